package rollout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []EpisodeRecord {
	return []EpisodeRecord{
		{RunID: "r", Env: "flappy", Episode: 0, Seed: 0, Steps: 10, Score: 0, Return: 1.0, Terminated: true},
		{RunID: "r", Env: "flappy", Episode: 1, Seed: 1, Steps: 20, Score: 1, Return: 2.0, Terminated: true},
		{RunID: "r", Env: "flappy", Episode: 2, Seed: 2, Steps: 30, Score: 2, Return: 3.0, Terminated: true},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testRecords())

	assert.Equal(t, 3, s.Episodes)
	assert.InDelta(t, 2.0, s.MeanReturn, 1e-12)
	assert.InDelta(t, 1.0, s.StdReturn, 1e-12)
	assert.Equal(t, 1.0, s.MinReturn)
	assert.Equal(t, 3.0, s.MaxReturn)
	assert.InDelta(t, 1.0, s.MeanScore, 1e-12)
	assert.InDelta(t, 20.0, s.MeanSteps, 1e-12)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize_SingleEpisodeHasZeroStd(t *testing.T) {
	s := Summarize(testRecords()[:1])
	assert.Equal(t, 1, s.Episodes)
	assert.Equal(t, 0.0, s.StdReturn)
}

func TestWriteReadCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episodes.csv")
	records := testRecords()

	require.NoError(t, WriteCSV(path, records))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
