package inr

import (
	"fmt"
	"slices"
	"sync"
)

// History is an append-only sequence of reports. It is safe for concurrent use.
type History struct {
	mu      sync.RWMutex
	reports []Report
}

func NewHistory(reports ...Report) (*History, error) {
	h := &History{}
	for _, report := range reports {
		if err := h.Append(report); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *History) Append(report Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.reports = append(h.reports, report)
	return nil
}

// Reports returns a copy in insertion order.
func (h *History) Reports() []Report {
	if h == nil {
		return []Report{}
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.reports)
}

func (h *History) Len() int {
	if h == nil {
		return 0
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.reports)
}

// Latest returns the report with the newest timestamp. Ties go to the one appended last.
func (h *History) Latest() (Report, bool) {
	reports := h.Reports()
	if len(reports) == 0 {
		return Report{}, false
	}

	latest := reports[0]
	for _, report := range reports[1:] {
		if !report.Timestamp.Before(latest.Timestamp) {
			latest = report
		}
	}
	return latest, true
}

// MonthlyAverages aggregates the whole history.
func (h *History) MonthlyAverages() (map[string]float64, error) {
	averages, err := MonthlyAverages(h.Reports())
	if err != nil {
		return nil, fmt.Errorf("unable to aggregate inr history: %w", err)
	}
	return averages, nil
}
