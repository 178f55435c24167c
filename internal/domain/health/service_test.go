package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byAnimal map[string][]Record
}

func newTestRepo() *testRepo {
	return &testRepo{byAnimal: map[string][]Record{}}
}

func (r *testRepo) Create(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return errors.New("repo: id required")
	}
	r.byAnimal[rec.AnimalID] = append(r.byAnimal[rec.AnimalID], rec)
	return nil
}

func (r *testRepo) LatestByAnimal(ctx context.Context, animalID string) (Record, error) {
	recs := r.byAnimal[animalID]
	if len(recs) == 0 {
		return Record{}, ErrNoRecord
	}
	latest := recs[0]
	for _, rec := range recs[1:] {
		if rec.UpdatedAt.After(latest.UpdatedAt) {
			latest = rec
		}
	}
	return latest, nil
}

func TestAdd_RecordsAuthor(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	rec, err := svc.Add(context.Background(), "animal-1", "registrar-1", AddInput{
		Vaccinated: true,
		Notes:      "  first checkup ",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if rec.UpdatedBy != "registrar-1" {
		t.Fatalf("expected author registrar-1, got %q", rec.UpdatedBy)
	}
	if rec.Notes != "first checkup" {
		t.Fatalf("notes not trimmed: %q", rec.Notes)
	}
	if len(repo.byAnimal["animal-1"]) != 1 {
		t.Fatal("record not persisted")
	}
}

func TestAdd_RequiresAnimalAndAuthor(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Add(context.Background(), "", "registrar-1", AddInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Add(context.Background(), "animal-1", " ", AddInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLatest_PicksNewestRecord(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Hour)
	}

	if _, err := svc.Add(context.Background(), "animal-1", "r1", AddInput{Notes: "old"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(context.Background(), "animal-1", "r1", AddInput{Notes: "new", Neutered: true}); err != nil {
		t.Fatalf("add: %v", err)
	}

	rec, err := svc.Latest(context.Background(), "animal-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if rec.Notes != "new" || !rec.Neutered {
		t.Fatalf("expected newest record, got %+v", rec)
	}
}

func TestLatestSnapshot_NoRecords(t *testing.T) {
	svc := NewService(newTestRepo())

	snap, found, err := svc.LatestSnapshot(context.Background(), "animal-1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if found {
		t.Fatalf("expected not found, got %+v", snap)
	}
}

func TestLatestSnapshot_MapsRecord(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Add(context.Background(), "animal-1", "r1", AddInput{Vaccinated: true, Dewormed: true, Notes: "ok"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	snap, found, err := svc.LatestSnapshot(context.Background(), "animal-1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !found {
		t.Fatal("expected found")
	}
	if !snap.Vaccinated || !snap.Dewormed || snap.Neutered || snap.Notes != "ok" {
		t.Fatalf("snapshot mismatch: %+v", snap)
	}
}
