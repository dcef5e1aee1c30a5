package cmd

import (
	"fmt"

	"fplassist/internal/contract"
	"fplassist/internal/snapcache"
	"fplassist/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.CacheBackend(viper.GetString("cache-backend"))
	if backend == schema.NoneBackend {
		return fmt.Errorf("cache backend is %q; nothing to manage", backend)
	}

	store, err := snapcache.Open(viper.GetString("cache-db-connect"))
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	cacheStore = store

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization instead of the full
// sharedSetup used by advice commands. This avoids API client construction
// and config validation for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the FPL API payload cache (reduces API calls)",
	Long: `Manage the payload cache that keeps repeated runs from hammering
the FPL API.

fplassist caches the unauthenticated bootstrap and fixtures payloads in a
local SQLite database; entries older than the cache TTL are refetched.
Squad data is never cached.

Subcommands:
  status - Show cache statistics
  clear  - Remove all cached payloads

Examples:
  # Check cache status
  fplassist cache status

  # Force fresh data on the next run
  fplassist cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached API payloads",
	Long: `Delete every cached FPL API payload from the local database.

Use this when:
- You want the next run to fetch completely fresh data
- The cache may be stale after a gameweek deadline
- Testing behavior without cache

Examples:
  # Clear the default cache
  fplassist cache clear

  # Clear a cache at a custom location
  fplassist cache clear --cache-db-connect /tmp/fpl.db`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := cacheStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics",
	Long: `Show how many API payloads are cached and when the most recent
fetch happened.

Examples:
  # Check cache status
  fplassist cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		entries, lastFetch, err := cacheStore.Status()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		fmt.Printf("Cached payloads: %d\n", entries)
		if entries > 0 {
			fmt.Printf("Last fetch:      %s\n", lastFetch.Format(contract.DateTimeFormat))
		}
	},
}
