package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"content-graph/models"
	"content-graph/repositories"
)

type ScanRuns struct {
	mu   sync.Mutex
	runs []*models.ScanRun

	FailIncrement error
}

func NewScanRuns() *ScanRuns { return &ScanRuns{} }

func (s *ScanRuns) Insert(_ context.Context, run *models.ScanRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run.ID == "" {
		run.ID = newID("scan")
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	cp := *run
	s.runs = append(s.runs, &cp)
	return nil
}

func (s *ScanRuns) find(id string) *models.ScanRun {
	for _, r := range s.runs {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *ScanRuns) Get(_ context.Context, id string) (*models.ScanRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.find(id)
	if r == nil {
		return nil, repositories.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *ScanRuns) List(_ context.Context, limit int64) ([]models.ScanRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ScanRun, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		out = append(out, *s.runs[i])
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (s *ScanRuns) SetTotal(_ context.Context, id string, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.find(id)
	if r == nil {
		return repositories.ErrNotFound
	}
	r.TotalItems = total
	return nil
}

func (s *ScanRuns) IncrementProcessed(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailIncrement != nil {
		return s.FailIncrement
	}
	r := s.find(id)
	if r == nil {
		return repositories.ErrNotFound
	}
	r.ProcessedItems++
	return nil
}

func (s *ScanRuns) Finish(_ context.Context, id string, status models.ScanStatus, errMsg string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.find(id)
	if r == nil || r.Status != models.ScanRunning {
		return nil
	}
	r.Status = status
	r.ErrorMessage = errMsg
	r.CompletedAt = &at
	return nil
}

func (s *ScanRuns) ListRunningBefore(_ context.Context, cutoff time.Time) ([]models.ScanRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ScanRun
	for _, r := range s.runs {
		if r.Status == models.ScanRunning && r.StartedAt.Before(cutoff) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *ScanRuns) ExistsRunning(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.runs {
		if r.Status == models.ScanRunning {
			return true, nil
		}
	}
	return false, nil
}

func (s *ScanRuns) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.runs {
		if r.ID == id {
			s.runs = append(s.runs[:i:i], s.runs[i+1:]...)
			return nil
		}
	}
	return nil
}

type ScanItems struct {
	mu    sync.Mutex
	items []*models.ScanItem
}

func NewScanItems() *ScanItems { return &ScanItems{} }

func (s *ScanItems) Insert(_ context.Context, item *models.ScanItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = newID("scanitem")
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	cp := *item
	s.items = append(s.items, &cp)
	return nil
}

func (s *ScanItems) Get(_ context.Context, id string) (*models.ScanItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *ScanItems) ListByRun(_ context.Context, runID string) ([]models.ScanItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ScanItem, 0)
	for _, it := range s.items {
		if it.ScanRunID == runID {
			out = append(out, *it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *ScanItems) MarkApplied(_ context.Context, id string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			if it.Applied {
				return false, nil
			}
			it.Applied = true
			it.AppliedAt = &at
			return true, nil
		}
	}
	return false, nil
}

func (s *ScanItems) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}
