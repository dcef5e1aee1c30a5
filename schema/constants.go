package schema

// Custom string types for type safety.
type (
	// SignalKey represents keys used in scoring breakdowns.
	SignalKey string

	// ChipType represents one of the four season-scoped chips.
	ChipType string

	// OutputMode represents the format of the output.
	OutputMode string

	// CacheBackend represents the snapshot cache backend.
	CacheBackend string
)

// FDR bounds. The sentinel sits one step beyond the hardest real rating so
// that a team with no known fixtures always ranks worse than a team facing
// a full window of 5s. "No data" must never look like "easy fixtures".
const (
	MinFDR             = 1
	MaxFDR             = 5
	SentinelDifficulty = float64(MaxFDR + 1)
)

// StatusAvailable is the FPL availability flag for a fit, selectable player.
const StatusAvailable = "a"

// Signal keys used in the scoring logic.
const (
	SignalForm     SignalKey = "form"     // rolling form rating
	SignalFixtures SignalKey = "fixtures" // fixture ease over the lookahead window
	SignalPoints   SignalKey = "points"   // season total points
)

// All chips supported.
const (
	BenchBoost    ChipType = "bench_boost"
	TripleCaptain ChipType = "triple_captain"
	FreeHit       ChipType = "free_hit"
	Wildcard      ChipType = "wildcard"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend CacheBackend = "sqlite" // default
	NoneBackend   CacheBackend = "none"
)

// AllChips lists the chips in report order.
var AllChips = []ChipType{BenchBoost, TripleCaptain, FreeHit, Wildcard}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[CacheBackend]struct{}{
	SQLiteBackend: {},
	NoneBackend:   {},
}

// DefaultWeights returns the default signal weights for player scoring.
// Form and fixture ease are the primary short-horizon differentiators;
// season total points acts as the reliability tie-break signal.
func DefaultWeights() map[SignalKey]float64 {
	return map[SignalKey]float64{
		SignalForm:     0.40,
		SignalFixtures: 0.35,
		SignalPoints:   0.25,
	}
}
