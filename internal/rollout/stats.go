package rollout

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EpisodeRecord is one finished episode, as written to the episodes
// CSV file.
type EpisodeRecord struct {
	RunID      string  `csv:"run_id"`
	Env        string  `csv:"env"`
	Worker     int     `csv:"worker"`
	Episode    int     `csv:"episode"`
	Seed       int64   `csv:"seed"`
	Steps      int     `csv:"steps"`
	Score      int     `csv:"score"`
	Return     float64 `csv:"return"`
	Terminated bool    `csv:"terminated"`
	Truncated  bool    `csv:"truncated"`
}

// Summary aggregates a batch of episode records.
type Summary struct {
	Episodes   int
	MeanReturn float64
	StdReturn  float64
	MinReturn  float64
	MaxReturn  float64
	MeanScore  float64
	MeanSteps  float64
}

// Summarize computes batch statistics over the given records.
func Summarize(records []EpisodeRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	returns := make([]float64, len(records))
	scores := make([]float64, len(records))
	steps := make([]float64, len(records))
	for i, r := range records {
		returns[i] = r.Return
		scores[i] = float64(r.Score)
		steps[i] = float64(r.Steps)
	}

	s := Summary{
		Episodes:   len(records),
		MeanReturn: stat.Mean(returns, nil),
		MinReturn:  floats.Min(returns),
		MaxReturn:  floats.Max(returns),
		MeanScore:  stat.Mean(scores, nil),
		MeanSteps:  stat.Mean(steps, nil),
	}
	if len(records) > 1 {
		s.StdReturn = stat.StdDev(returns, nil)
	}
	return s
}

// WriteCSV saves the records to path, creating or truncating the file.
func WriteCSV(path string, records []EpisodeRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("writing episode records: %w", err)
	}
	return nil
}

// ReadCSV loads episode records back from path.
func ReadCSV(path string) ([]EpisodeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []EpisodeRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("reading episode records: %w", err)
	}
	return records, nil
}
