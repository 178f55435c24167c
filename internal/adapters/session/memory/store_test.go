package memory

import (
	"context"
	"testing"

	"stray-adoption/internal/ports/auth"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	id := auth.Identity{UserID: "u1", Username: "ana", Role: auth.RoleUser}
	if err := store.Create(ctx, "tok-1", id); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, ok := store.Get(ctx, "tok-1")
	if !ok {
		t.Fatal("expected session")
	}
	if got != id {
		t.Fatalf("identity mismatch: %+v", got)
	}

	if err := store.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := store.Get(ctx, "tok-1"); ok {
		t.Fatal("session must be gone after delete")
	}

	// Delete es idempotente.
	if err := store.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestSessionStore_RejectsEmptyToken(t *testing.T) {
	store := NewSessionStore()

	if err := store.Create(context.Background(), "  ", auth.Identity{}); err == nil {
		t.Fatal("expected error on empty token")
	}
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store := NewSessionStore()

	if _, ok := store.Get(context.Background(), "ghost"); ok {
		t.Fatal("unknown token must not resolve")
	}
}
