package define

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/lexigram/internal/model"
)

func newDictionary(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/words" || r.URL.Query().Get("md") != "d" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("sp") {
		case "hoe":
			_, _ = w.Write([]byte(`[{"word":"hoe","score":100,"defs":["n\ta tool with a flat blade","v\tdig with a hoe"]}]`))
		case "ell":
			_, _ = w.Write([]byte(`[{"word":"ell","defs":["an extension at the end of a building"]}]`))
		case "broken":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookup(t *testing.T) {
	var hits atomic.Int32
	srv := newDictionary(t, &hits)
	client := NewClient(srv.URL+"/", time.Second, nil)
	ctx := context.Background()

	def, err := client.Lookup(ctx, " HOE ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	want := model.Definition{Word: "hoe", Text: "a tool with a flat blade", Found: true}
	if diff := cmp.Diff(want, def); diff != "" {
		t.Fatalf("unexpected definition (-want +got):\n%s", diff)
	}

	def, err = client.Lookup(ctx, "ell")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if def.Text != "an extension at the end of a building" {
		t.Fatalf("unexpected text %q", def.Text)
	}

	def, err = client.Lookup(ctx, "zzxq")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if def.Found || def.Text != NotFoundText {
		t.Fatalf("expected not found, got %+v", def)
	}
}

func TestLookupErrors(t *testing.T) {
	var hits atomic.Int32
	srv := newDictionary(t, &hits)
	client := NewClient(srv.URL, time.Second, nil)

	if _, err := client.Lookup(context.Background(), "broken"); err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status error, got %v", err)
	}
	if _, err := client.Lookup(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty word")
	}
}

func TestLookupUsesCache(t *testing.T) {
	var hits atomic.Int32
	srv := newDictionary(t, &hits)
	cache, err := NewMemoryCache(8)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	client := NewClient(srv.URL, time.Second, cache)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := client.Lookup(ctx, "hoe"); err != nil {
			t.Fatalf("lookup: %v", err)
		}
		if _, err := client.Lookup(ctx, "missing"); err != nil {
			t.Fatalf("lookup: %v", err)
		}
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected 2 requests, got %d", got)
	}
}

func TestLayeredBackfills(t *testing.T) {
	ctx := context.Background()
	upper, _ := NewMemoryCache(4)
	lower, _ := NewMemoryCache(4)
	def := model.Definition{Word: "hoe", Text: "tool", Found: true}
	if err := lower.PutDefinition(ctx, def); err != nil {
		t.Fatalf("put: %v", err)
	}

	layered := Layered{upper, lower}
	got, ok, err := layered.GetDefinition(ctx, "hoe")
	if err != nil || !ok {
		t.Fatalf("expected hit (ok=%v err=%v)", ok, err)
	}
	if diff := cmp.Diff(def, got); diff != "" {
		t.Fatalf("unexpected definition (-want +got):\n%s", diff)
	}
	if _, ok, _ := upper.GetDefinition(ctx, "hoe"); !ok {
		t.Fatalf("expected upper layer to be backfilled")
	}
	if _, ok, _ := layered.GetDefinition(ctx, "ell"); ok {
		t.Fatalf("expected miss")
	}
}

func TestLookupAllKeepsOrder(t *testing.T) {
	var hits atomic.Int32
	srv := newDictionary(t, &hits)
	client := NewClient(srv.URL, time.Second, nil)

	defs, err := client.LookupAll(context.Background(), []string{"ell", "nothing", "hoe"}, 2)
	if err != nil {
		t.Fatalf("lookup all: %v", err)
	}
	got := make([]string, len(defs))
	for i, d := range defs {
		got[i] = d.Word
	}
	if diff := cmp.Diff([]string{"ell", "nothing", "hoe"}, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if defs[1].Found || !defs[2].Found {
		t.Fatalf("unexpected found flags: %+v", defs)
	}

	if _, err := client.LookupAll(context.Background(), []string{"hoe", "broken"}, 2); err == nil {
		t.Fatalf("expected error from failing lookup")
	}
}
