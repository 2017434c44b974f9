package incidents

import (
	"context"

	"sentinel-backend/internal/shared/storage/jsonfile"
)

// FileRepo persists the incident log as a flat JSON file. All mutation runs
// through the store's locked read-modify-write cycle, so concurrent requests
// cannot lose writes.
type FileRepo struct {
	file *jsonfile.Store
}

// NewFileRepo constructs a FileRepo for the given path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{file: jsonfile.New(path)}
}

// Append inserts the incident at the front and trims the log to its cap.
func (r *FileRepo) Append(ctx context.Context, incident Incident) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var records []Incident
	return r.file.Update(&records, func() error {
		records = append([]Incident{incident}, records...)
		if len(records) > maxIncidents {
			records = records[:maxIncidents]
		}
		return nil
	})
}

// List returns one page of matching incidents plus the filtered total.
func (r *FileRepo) List(ctx context.Context, filter Filter) ([]Incident, int, error) {
	records, err := r.All(ctx)
	if err != nil {
		return nil, 0, err
	}
	matched := applyFilter(records, filter)
	pageRecords, total := page(matched, filter)
	return pageRecords, total, nil
}

// GetByID returns one incident by its ID.
func (r *FileRepo) GetByID(ctx context.Context, incidentID string) (Incident, error) {
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
func (r *FileRepo) Delete(ctx context.Context, incidentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var records []Incident
	return r.file.Update(&records, func() error {
		kept := records[:0]
		for _, rec := range records {
			if rec.ID != incidentID {
				kept = append(kept, rec)
			}
		}
		records = kept
		return nil
	})
}

// Clear removes every incident.
func (r *FileRepo) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.file.Write([]Incident{})
}

// All returns the whole log, newest first.
func (r *FileRepo) All(ctx context.Context) ([]Incident, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var records []Incident
	if err := r.file.Read(&records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []Incident{}
	}
	return records, nil
}

var _ Repo = (*FileRepo)(nil)
