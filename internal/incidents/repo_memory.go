package incidents

import (
	"context"
	"sync"
)

// MemoryRepo stores the incident log in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []Incident
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Append inserts the incident at the front and trims the log to its cap.
func (r *MemoryRepo) Append(ctx context.Context, incident Incident) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append([]Incident{incident}, r.records...)
	if len(r.records) > maxIncidents {
		r.records = r.records[:maxIncidents]
	}
	return nil
}

// List returns one page of matching incidents plus the filtered total.
func (r *MemoryRepo) List(ctx context.Context, filter Filter) ([]Incident, int, error) {
	records, err := r.All(ctx)
	if err != nil {
		return nil, 0, err
	}
	matched := applyFilter(records, filter)
	pageRecords, total := page(matched, filter)
	return pageRecords, total, nil
}

// GetByID returns one incident by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, incidentID string) (Incident, error) {
	records, err := r.All(ctx)
	if err != nil {
		return Incident{}, err
	}
	for _, rec := range records {
		if rec.ID == incidentID {
			return rec, nil
		}
	}
	return Incident{}, ErrNotFound
}

// Delete removes one incident by ID; unknown IDs are a no-op.
func (r *MemoryRepo) Delete(ctx context.Context, incidentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.records[:0]
	for _, rec := range r.records {
		if rec.ID != incidentID {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

// Clear removes every incident.
func (r *MemoryRepo) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	return nil
}

// All returns a copy of the whole log, newest first.
func (r *MemoryRepo) All(ctx context.Context) ([]Incident, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Incident, len(r.records))
	copy(out, r.records)
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
