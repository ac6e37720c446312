package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/lexigram/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "lexigram.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func words[T any](items []T, word func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, word(item))
	}
	return out
}

func TestFavorites(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, w := range []string{"hello", "hole", "hoe"} {
		if err := st.AddFavorite(ctx, w, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("add favorite: %v", err)
		}
	}
	favs, err := st.ListFavorites(ctx)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	got := words(favs, func(f model.Favorite) string { return f.Word })
	if diff := cmp.Diff([]string{"hoe", "hole", "hello"}, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if !favs[2].AddedAt.Equal(base) {
		t.Fatalf("unexpected timestamp %v", favs[2].AddedAt)
	}

	ok, err := st.IsFavorite(ctx, "hole")
	if err != nil || !ok {
		t.Fatalf("expected hole to be a favorite (err=%v)", err)
	}
	if err := st.RemoveFavorite(ctx, "hole"); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	ok, err = st.IsFavorite(ctx, "hole")
	if err != nil || ok {
		t.Fatalf("expected hole to be removed (err=%v)", err)
	}
	set, err := st.FavoriteSet(ctx)
	if err != nil {
		t.Fatalf("favorite set: %v", err)
	}
	if diff := cmp.Diff(map[string]bool{"hello": true, "hoe": true}, set); diff != "" {
		t.Fatalf("unexpected set (-want +got):\n%s", diff)
	}

	if err := st.ClearFavorites(ctx); err != nil {
		t.Fatalf("clear favorites: %v", err)
	}
	favs, err = st.ListFavorites(ctx)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favs) != 0 {
		t.Fatalf("expected no favorites, got %v", favs)
	}
}

func TestHistoryMovesToFrontAndTrims(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	searches := []string{"one", "two", "three", "one", "four"}
	for i, w := range searches {
		if err := st.AddHistory(ctx, w, base.Add(time.Duration(i)*time.Second), 3); err != nil {
			t.Fatalf("add history: %v", err)
		}
	}
	entries, err := st.ListHistory(ctx)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	got := words(entries, func(e model.HistoryEntry) string { return e.Word })
	if diff := cmp.Diff([]string{"four", "one", "three"}, got); diff != "" {
		t.Fatalf("unexpected history (-want +got):\n%s", diff)
	}
}

func TestDefinitionsCache(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := st.GetDefinition(ctx, "hoe"); err != nil || ok {
		t.Fatalf("expected cache miss (ok=%v err=%v)", ok, err)
	}
	def := model.Definition{Word: "hoe", Text: "a garden tool", Found: true}
	if err := st.PutDefinition(ctx, def); err != nil {
		t.Fatalf("put definition: %v", err)
	}
	got, ok, err := st.GetDefinition(ctx, "hoe")
	if err != nil || !ok {
		t.Fatalf("expected cache hit (ok=%v err=%v)", ok, err)
	}
	if diff := cmp.Diff(def, got); diff != "" {
		t.Fatalf("unexpected definition (-want +got):\n%s", diff)
	}
}
