package incidents

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func newTestFileRepo(t *testing.T) *FileRepo {
	t.Helper()
	return NewFileRepo(filepath.Join(t.TempDir(), "incidents.json"))
}

func testIncident(id, level string, score int, departments ...string) Incident {
	return Incident{
		ID:                  id,
		Timestamp:           time.Now().UTC(),
		FileName:            id + ".txt",
		FileType:            "txt",
		FileSize:            "10 bytes",
		SensitivityLevel:    level,
		OverallScore:        score,
		TopCategories:       []string{"pii"},
		DepartmentsAffected: departments,
		Status:              "completed",
		Hash:                "hash-" + id,
	}
}

func TestFileRepoAppendNewestFirst(t *testing.T) {
	repo := newTestFileRepo(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Append(ctx, testIncident(id, "LOW", 10)); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	records, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ID != "c" || records[2].ID != "a" {
		t.Fatalf("expected newest-first order [c b a], got [%s %s %s]",
			records[0].ID, records[1].ID, records[2].ID)
	}
}

func TestFileRepoSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "incidents.json")
	ctx := context.Background()

	repo := NewFileRepo(path)
	if err := repo.Append(ctx, testIncident("a", "HIGH", 70, "Legal")); err != nil {
		t.Fatalf("append: %v", err)
	}

	reopened := NewFileRepo(path)
	got, err := reopened.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.SensitivityLevel != "HIGH" || got.OverallScore != 70 {
		t.Fatalf("unexpected record after reopen: %+v", got)
	}
	if len(got.DepartmentsAffected) != 1 || got.DepartmentsAffected[0] != "Legal" {
		t.Fatalf("expected departments [Legal], got %v", got.DepartmentsAffected)
	}
}

func TestFileRepoListFilters(t *testing.T) {
	repo := newTestFileRepo(t)
	ctx := context.Background()

	seed := []Incident{
		testIncident("a", "LOW", 10),
		testIncident("b", "HIGH", 70, "Legal"),
		testIncident("c", "HIGH", 80, "Finance"),
		testIncident("d", "CRITICAL", 95, "Legal", "Executive"),
	}
	for _, inc := range seed {
		if err := repo.Append(ctx, inc); err != nil {
			t.Fatalf("append %s: %v", inc.ID, err)
		}
	}

	records, total, err := repo.List(ctx, Filter{Severity: "high"})
	if err != nil {
		t.Fatalf("list by severity: %v", err)
	}
	if total != 2 || len(records) != 2 {
		t.Fatalf("expected 2 HIGH records, got total=%d len=%d", total, len(records))
	}

	records, total, err = repo.List(ctx, Filter{Department: "Legal"})
	if err != nil {
		t.Fatalf("list by department: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 Legal records, got %d", total)
	}
	for _, rec := range records {
		if rec.ID != "b" && rec.ID != "d" {
			t.Fatalf("unexpected record %s in Legal filter", rec.ID)
		}
	}

	records, total, err = repo.List(ctx, Filter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("list paged: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected unfiltered total 4, got %d", total)
	}
	if len(records) != 2 || records[0].ID != "c" || records[1].ID != "b" {
		t.Fatalf("expected page [c b], got %v", ids(records))
	}

	records, _, err = repo.List(ctx, Filter{Offset: 10})
	if err != nil {
		t.Fatalf("list past end: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty page past end, got %d records", len(records))
	}
}

func TestFileRepoDelete(t *testing.T) {
	repo := newTestFileRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, testIncident("a", "LOW", 10)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, testIncident("b", "LOW", 10)); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "b"); err != nil {
		t.Fatalf("expected b to survive, got %v", err)
	}

	// Deleting an unknown ID is a no-op.
	if err := repo.Delete(ctx, "zzz"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
}

func TestFileRepoClear(t *testing.T) {
	repo := newTestFileRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, testIncident("a", "LOW", 10)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	records, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty log after clear, got %d", len(records))
	}
}

func TestMemoryRepoCapsLog(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	for i := 0; i < maxIncidents+10; i++ {
		if err := repo.Append(ctx, testIncident("inc-"+strconv.Itoa(i), "LOW", 10)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(records) != maxIncidents {
		t.Fatalf("expected log capped at %d, got %d", maxIncidents, len(records))
	}
	if records[0].ID != "inc-"+strconv.Itoa(maxIncidents+9) {
		t.Fatalf("expected newest record first, got %s", records[0].ID)
	}
}

func ids(records []Incident) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}
