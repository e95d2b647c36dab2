// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

func testStore(t *testing.T, limit int) *Store {
	t.Helper()
	cfg := types.HistoryConfig{
		Path:  filepath.Join(t.TempDir(), "history", "searches.db"),
		Limit: limit,
	}
	store, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := testStore(t, 10)
	ctx := context.Background()

	if err := store.Record(ctx, "quantum computing", 10, 10); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(ctx, "transformers", 25, 3); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.Recent(ctx)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	// Newest first.
	if entries[0].Term != "transformers" {
		t.Errorf("entries[0].Term = %q, want %q", entries[0].Term, "transformers")
	}
	if entries[0].MaxResults != 25 || entries[0].Results != 3 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[0].At.IsZero() {
		t.Error("entries[0].At should be set")
	}
}

func TestRecentRespectsLimit(t *testing.T) {
	store := testStore(t, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Record(ctx, "term", 10, i); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := store.Recent(ctx)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("len(entries) = %d, want 3", len(entries))
	}
}

func TestRecentEmptyStore(t *testing.T) {
	store := testStore(t, 10)

	entries, err := store.Recent(context.Background())
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(types.HistoryConfig{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}
