package incidents

import (
	"context"
	"errors"
	"math"

	"sentinel-backend/internal/shared/metrics"
)

const (
	defaultListLimit   = 50
	recentCriticalSize = 5
)

// Service contains business logic for the incident log.
type Service struct {
	Repo Repo
}

// Record appends one incident to the log.
func (s *Service) Record(ctx context.Context, incident Incident) error {
	if incident.ID == "" {
		return errors.New("incident id is required")
	}
	if err := s.Repo.Append(ctx, incident); err != nil {
		return err
	}
	metrics.IncIncidentRecorded()
	return nil
}

// List returns one dashboard page of incidents.
func (s *Service) List(ctx context.Context, filter Filter) (Page, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	records, total, err := s.Repo.List(ctx, filter)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Total:     total,
		Offset:    filter.Offset,
		Limit:     filter.Limit,
		Incidents: records,
	}, nil
}

// Get returns one incident by ID.
func (s *Service) Get(ctx context.Context, incidentID string) (Incident, error) {
	return s.Repo.GetByID(ctx, incidentID)
}

// Delete removes one incident by ID.
func (s *Service) Delete(ctx context.Context, incidentID string) error {
	return s.Repo.Delete(ctx, incidentID)
}

// Clear removes every incident.
func (s *Service) Clear(ctx context.Context) error {
	return s.Repo.Clear(ctx)
}

// Stats aggregates the whole log for the dashboard.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	records, err := s.Repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalScans:     len(records),
		BySeverity:     map[string]int{"LOW": 0, "MEDIUM": 0, "HIGH": 0, "CRITICAL": 0},
		ByDepartment:   map[string]int{},
		ByCategory:     map[string]int{},
		RecentCritical: []Incident{},
	}
	if len(records) == 0 {
		return stats, nil
	}

	var scoreSum int
	for _, rec := range records {
		stats.BySeverity[rec.SensitivityLevel]++
		for _, dept := range rec.DepartmentsAffected {
			stats.ByDepartment[dept]++
		}
		for _, cat := range rec.TopCategories {
			stats.ByCategory[cat]++
		}
		scoreSum += rec.OverallScore
		if rec.SensitivityLevel == "CRITICAL" && len(stats.RecentCritical) < recentCriticalSize {
			stats.RecentCritical = append(stats.RecentCritical, rec)
		}
	}
	avg := float64(scoreSum) / float64(len(records))
	stats.AvgScore = math.Round(avg*10) / 10
	return stats, nil
}
