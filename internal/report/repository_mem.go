package report

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	report  *BoardReport
	expires time.Time // zero: no expiry
}

type memRepo struct {
	mu      sync.Mutex
	reports map[string]memEntry
	now     func() time.Time
}

func NewMemoryRepo() Repo {
	return &memRepo{
		reports: make(map[string]memEntry),
		now:     time.Now,
	}
}

func (m *memRepo) Get(ctx context.Context, board string) (*BoardReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.reports[board]
	if !ok {
		return nil, nil
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.reports, board)
		return nil, nil
	}
	return e.report, nil
}

func (m *memRepo) Save(ctx context.Context, r *BoardReport, ttlSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memEntry{report: r}
	if ttlSeconds > 0 {
		e.expires = m.now().Add(time.Duration(ttlSeconds) * time.Second)
	}
	m.reports[r.Board] = e
	return nil
}

func (m *memRepo) Delete(ctx context.Context, board string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reports, board)
	return nil
}
