package downloader

import "time"

// Outcome is the terminal state of one animal
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeSkipped
	OutcomeSaved
	OutcomeNoImage
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeSaved:
		return "saved"
	case OutcomeNoImage:
		return "no_image"
	default:
		return "failed"
	}
}

// Summary counts results per outcome
type Summary struct {
	Total    int
	Saved    int
	Skipped  int
	NoImage  int
	Failed   int
	Bytes    int64
	Duration time.Duration
}

// Summarize folds results into a Summary. Duration is left to the caller.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeSaved:
			s.Saved++
			s.Bytes += int64(r.Size)
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeNoImage:
			s.NoImage++
		default:
			s.Failed++
		}
	}
	return s
}
