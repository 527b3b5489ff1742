package testsupport

import (
	"context"
	"testing"

	"warden/internal/config"
	"warden/internal/roster"
)

// MustOpenStore opens a roster.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *roster.Store {
	t.Helper()

	store, err := roster.Open(cfg)
	if err != nil {
		t.Fatalf("roster.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustAddRecord inserts a registration for tests using the provided store.
func MustAddRecord(t testing.TB, store *roster.Store, name string, distance int, feePaid bool) *roster.Record {
	t.Helper()

	record, err := store.Add(context.Background(), name, distance, feePaid)
	if err != nil {
		t.Fatalf("store.Add: %v", err)
	}
	return record
}
