package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"fplassist/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChips() []schema.ChipRecommendation {
	return []schema.ChipRecommendation{
		{Chip: schema.BenchBoost, Gameweek: 23, Score: 2.1, Reason: "easiest full-squad week in the window"},
		{Chip: schema.TripleCaptain, Gameweek: 21, Score: 2.0, Reason: "Haaland has his easiest fixture"},
	}
}

func TestWriteChipsTable(t *testing.T) {
	cfg := testConfig()
	advice := testAdvice()
	advice.Chips = testChips()

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(cfg.Precision)
	err := writeChipsTable(advice, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Bench Boost")
	assert.Contains(t, out, "Triple Captain")
	assert.Contains(t, out, "GW23")
	assert.Contains(t, out, "Chip plan from GW21 over 5 gameweeks")
}

func TestWriteChipsTableEmpty(t *testing.T) {
	cfg := testConfig()
	advice := testAdvice()
	advice.Chips = nil

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(cfg.Precision)
	err := writeChipsTable(advice, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No chip recommendations")
}

func TestWriteCSVResultsForChips(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForChips(w, testChips(), fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "chip,gameweek,score,reason", lines[0])
	assert.Contains(t, lines[1], "bench_boost")
	assert.Contains(t, lines[2], "triple_captain")
}

func TestWriteChipsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, testChips())
	require.NoError(t, err)

	var result []map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "bench_boost", result[0]["chip"])
	assert.Equal(t, float64(23), result[0]["gameweek"])
}

func TestGetMaxTableNameWidth(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 120
	assert.Equal(t, 30, getMaxTableNameWidth(cfg))

	cfg.Detail = true
	cfg.Explain = true
	assert.Equal(t, 15, getMaxTableNameWidth(cfg))

	cfg.Width = 60
	assert.Equal(t, 8, getMaxTableNameWidth(cfg))
}
