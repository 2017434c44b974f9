package incidents

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned for lookups of unknown incident IDs.
var ErrNotFound = errors.New("incident not found")

// maxIncidents caps the log; the oldest records fall off the end.
const maxIncidents = 1000

// Repo defines persistence operations for the incident log. Implementations
// keep records newest-first.
type Repo interface {
	Append(ctx context.Context, incident Incident) error
	List(ctx context.Context, filter Filter) ([]Incident, int, error)
	GetByID(ctx context.Context, incidentID string) (Incident, error)
	Delete(ctx context.Context, incidentID string) error
	Clear(ctx context.Context) error
	All(ctx context.Context) ([]Incident, error)
}

// applyFilter returns the records matching the severity/department filter.
func applyFilter(records []Incident, filter Filter) []Incident {
	out := make([]Incident, 0, len(records))
	severity := strings.ToUpper(strings.TrimSpace(filter.Severity))
	department := strings.TrimSpace(filter.Department)
	for _, rec := range records {
		if severity != "" && rec.SensitivityLevel != severity {
			continue
		}
		if department != "" && !containsString(rec.DepartmentsAffected, department) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// page slices the filtered records by offset/limit and reports the total.
func page(records []Incident, filter Filter) ([]Incident, int) {
	total := len(records)
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []Incident{}, total
	}
	end := total
	if filter.Limit > 0 && offset+filter.Limit < end {
		end = offset + filter.Limit
	}
	return records[offset:end], total
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
