package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/catvertex/wikigraph/pkg/cache"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	t.Cleanup(func() { backend.Close() })

	c := NewClient("en", backend, time.Hour)
	c.SetBaseURL(server.URL)
	return c
}

func membersResponse(cont string, titles ...string) map[string]any {
	members := make([]map[string]any, len(titles))
	for i, title := range titles {
		members[i] = map[string]any{"ns": 14, "title": "Category:" + title}
	}
	resp := map[string]any{
		"query": map[string]any{"categorymembers": members},
	}
	if cont != "" {
		resp["continue"] = map[string]any{"cmcontinue": cont}
	}
	return resp
}

func TestSubcategories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("cmtitle"); got != "Category:Science" {
			t.Errorf("cmtitle = %q, want Category:Science", got)
		}
		if got := r.URL.Query().Get("cmtype"); got != "subcat" {
			t.Errorf("cmtype = %q, want subcat", got)
		}
		json.NewEncoder(w).Encode(membersResponse("", "Astronomy", "Biology"))
	})

	titles, err := c.Subcategories(context.Background(), "Science")
	if err != nil {
		t.Fatalf("Subcategories error: %v", err)
	}
	want := []string{"Astronomy", "Biology"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("Subcategories = %v, want %v", titles, want)
	}
}

func TestSubcategoriesContinuation(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("cmcontinue") == "" {
			json.NewEncoder(w).Encode(membersResponse("page2", "Astronomy"))
			return
		}
		json.NewEncoder(w).Encode(membersResponse("", "Biology"))
	})

	titles, err := c.Subcategories(context.Background(), "Science")
	if err != nil {
		t.Fatalf("Subcategories error: %v", err)
	}
	if calls != 2 {
		t.Errorf("API calls = %d, want 2", calls)
	}
	want := []string{"Astronomy", "Biology"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("Subcategories = %v, want %v", titles, want)
	}
}

func TestSubcategoriesEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(membersResponse(""))
	})

	titles, err := c.Subcategories(context.Background(), "Leafy")
	if err != nil {
		t.Fatalf("Subcategories error: %v", err)
	}
	if len(titles) != 0 {
		t.Errorf("Subcategories = %v, want empty", titles)
	}
}

func TestSubcategoriesCached(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(membersResponse("", "Astronomy"))
	})

	ctx := context.Background()
	if _, err := c.Subcategories(ctx, "Science"); err != nil {
		t.Fatalf("first call error: %v", err)
	}
	if _, err := c.Subcategories(ctx, "Science"); err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if calls != 1 {
		t.Errorf("API calls = %d, want 1 (second should hit cache)", calls)
	}
}

func TestSubcategoriesRefreshBypassesCache(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(membersResponse("", "Astronomy"))
	})

	ctx := context.Background()
	c.SetRefresh(true)
	_, _ = c.Subcategories(ctx, "Science")
	_, _ = c.Subcategories(ctx, "Science")
	if calls != 2 {
		t.Errorf("API calls = %d, want 2 with refresh enabled", calls)
	}
}

func TestSubcategoriesInvalidCategory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": "invalidcategory", "info": "The category name is not valid"},
		})
	})

	_, err := c.Subcategories(context.Background(), "||bogus||")
	if !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSubcategoriesServerError(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Subcategories(context.Background(), "Science")
	if !errors.Is(err, cache.ErrNetwork) {
		t.Errorf("err = %v, want ErrNetwork", err)
	}
	if calls != 3 {
		t.Errorf("API calls = %d, want 3 (retried with backoff)", calls)
	}
}

func TestPageURL(t *testing.T) {
	backend := cache.NewNullCache()
	c := NewClient("en", backend, 0)

	tests := []struct {
		title string
		want  string
	}{
		{"Science", "https://en.wikipedia.org/wiki/Category:Science"},
		{"Main topic classifications", "https://en.wikipedia.org/wiki/Category:Main_topic_classifications"},
	}
	for _, tt := range tests {
		if got := c.PageURL(tt.title); got != tt.want {
			t.Errorf("PageURL(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
