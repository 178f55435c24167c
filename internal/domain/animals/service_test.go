package animals

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Animal
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, onlyPublished bool) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.byID {
		if onlyPublished && a.Status != StatusPublished {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) UpdateStatus(ctx context.Context, id string, st Status) error {
	a, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = st
	r.byID[id] = a
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func TestRegister_DefaultsToDraftAndFamilyFoster(t *testing.T) {
	svc, repo := newTestService()

	a, err := svc.Register(context.Background(), "registrar-1", CreateInput{
		Name:    "  Milo ",
		Species: "dog",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if a.Status != StatusDraft {
		t.Fatalf("expected draft, got %s", a.Status)
	}
	if a.FosterType != FosterTypeDefault {
		t.Fatalf("expected foster %q, got %q", FosterTypeDefault, a.FosterType)
	}
	if a.Name != "Milo" {
		t.Fatalf("name not trimmed: %q", a.Name)
	}
	if _, ok := repo.byID[a.ID]; !ok {
		t.Fatal("animal not persisted")
	}
}

func TestRegister_RequiresNameAndSpecies(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), "registrar-1", CreateInput{Name: "Milo"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without species, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "registrar-1", CreateInput{Species: "dog"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
}

func TestPublishUnpublish_Unconditional(t *testing.T) {
	svc, repo := newTestService()
	repo.byID["a1"] = Animal{ID: "a1", Status: StatusAdopted}

	if err := svc.Publish(context.Background(), "a1"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if repo.byID["a1"].Status != StatusPublished {
		t.Fatalf("expected published, got %s", repo.byID["a1"].Status)
	}

	if err := svc.Unpublish(context.Background(), "a1"); err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if repo.byID["a1"].Status != StatusDraft {
		t.Fatalf("expected draft, got %s", repo.byID["a1"].Status)
	}
}

func TestRepublish_BlockedWhenAdopted(t *testing.T) {
	svc, repo := newTestService()
	repo.byID["a1"] = Animal{ID: "a1", Status: StatusAdopted}

	if err := svc.Republish(context.Background(), "a1"); !errors.Is(err, ErrAlreadyAdopted) {
		t.Fatalf("expected ErrAlreadyAdopted, got %v", err)
	}
	if repo.byID["a1"].Status != StatusAdopted {
		t.Fatal("adopted animal must not change")
	}
}

func TestRepublish_FromDraft(t *testing.T) {
	svc, repo := newTestService()
	repo.byID["a1"] = Animal{ID: "a1", Status: StatusDraft}

	if err := svc.Republish(context.Background(), "a1"); err != nil {
		t.Fatalf("republish: %v", err)
	}
	if repo.byID["a1"].Status != StatusPublished {
		t.Fatalf("expected published, got %s", repo.byID["a1"].Status)
	}
}

func TestRepublish_NotFound(t *testing.T) {
	svc, _ := newTestService()

	if err := svc.Republish(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_FiltersByVisibility(t *testing.T) {
	svc, repo := newTestService()
	repo.byID["a1"] = Animal{ID: "a1", Status: StatusPublished}
	repo.byID["a2"] = Animal{ID: "a2", Status: StatusDraft}

	public, err := svc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("public view: expected 1 animal, got %d", len(public))
	}

	staff, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(staff) != 2 {
		t.Fatalf("staff view: expected 2 animals, got %d", len(staff))
	}
}
