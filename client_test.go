package attiodex

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeAttio is a minimal Attio API double capturing query bodies.
type fakeAttio struct {
	mu        sync.Mutex
	queries   [][]byte
	responses []string
	created   []byte
}

func (f *fakeAttio) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		switch {
		case strings.HasSuffix(r.URL.Path, "/records/query"):
			f.mu.Lock()
			f.queries = append(f.queries, body)
			resp := `{"data":[]}`
			if len(f.responses) > 0 {
				resp = f.responses[0]
				f.responses = f.responses[1:]
			}
			f.mu.Unlock()
			io.WriteString(w, resp)
		case r.Method == http.MethodPost && strings.Contains(r.URL.Path, "/records"):
			f.mu.Lock()
			f.created = body
			f.mu.Unlock()
			io.WriteString(w, `{"data":{"id":{"record_id":"rec_new"},"values":{"name":[{"value":"Acme"}]}}}`)
		case r.URL.Path == "/v2/self":
			io.WriteString(w, `{"active":true}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"status_code":404,"code":"not_found","message":"no such route"}`)
		}
	})
}

func newTestClient(t *testing.T, fake *fakeAttio) *Client {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	client, err := New(WithAPIKey("test-key"), WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("New without an API key must fail")
	}
}

func TestSearch_EndToEnd(t *testing.T) {
	fake := &fakeAttio{responses: []string{
		`{"data":[{"id":{"record_id":"rec_1"},"values":{"name":[{"value":"Acme Corp"}]}}]}`,
	}}
	client := newTestClient(t, fake)

	records, err := client.Search("companies").Query("acme corp").Limit(5).Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(records) != 1 || records[0].Name() != "Acme Corp" {
		t.Fatalf("records = %+v", records)
	}

	var body struct {
		Filter map[string]any `json:"filter"`
		Limit  int            `json:"limit"`
	}
	if err := json.Unmarshal(fake.queries[0], &body); err != nil {
		t.Fatalf("unmarshal query body: %v", err)
	}
	if body.Limit != 5 {
		t.Errorf("limit = %d", body.Limit)
	}
	// Multi-word text lands as AND of per-token OR groups inside the top OR.
	raw, _ := json.Marshal(body.Filter)
	if !strings.Contains(string(raw), `"$and"`) || !strings.Contains(string(raw), `"$contains"`) {
		t.Errorf("filter = %s", raw)
	}
}

func TestSearch_FallbackRetriesOnce(t *testing.T) {
	fake := &fakeAttio{responses: []string{
		`{"data":[]}`,
		`{"data":[{"id":{"record_id":"rec_2"},"values":{"name":[{"value":"Acme West"}]}}]}`,
	}}
	client := newTestClient(t, fake)

	records, err := client.Search("companies").Query("acme west").Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %+v", records)
	}
	if len(fake.queries) != 2 {
		t.Fatalf("query count = %d, want strict then relaxed", len(fake.queries))
	}
	// The relaxed retry is a flat OR with no AND level.
	if strings.Contains(string(fake.queries[1]), `"$and"`) {
		t.Errorf("relaxed filter = %s", fake.queries[1])
	}
	if !strings.Contains(string(fake.queries[1]), `"$or"`) {
		t.Errorf("relaxed filter = %s", fake.queries[1])
	}
}

func TestRecords_CreateNormalizesPayload(t *testing.T) {
	fake := &fakeAttio{}
	client := newTestClient(t, fake)

	rec, err := client.Records("companies").Create(context.Background(), map[string]any{
		"website":    "acme.com",
		"categories": "technology",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID != "rec_new" {
		t.Errorf("ID = %q", rec.ID)
	}

	var body struct {
		Data struct {
			Values map[string]any `json:"values"`
		} `json:"data"`
	}
	if err := json.Unmarshal(fake.created, &body); err != nil {
		t.Fatalf("unmarshal create body: %v", err)
	}
	if body.Data.Values["domains"] != "acme.com" {
		t.Errorf("values = %v, want the domains slug", body.Data.Values)
	}
	cats, _ := body.Data.Values["categories"].([]any)
	if len(cats) != 1 || cats[0] != "Technology" {
		t.Errorf("categories = %v, want canonical spelling", body.Data.Values["categories"])
	}
}

func TestRecords_CreateRejectsCollisionLocally(t *testing.T) {
	fake := &fakeAttio{}
	client := newTestClient(t, fake)

	_, err := client.Records("companies").Create(context.Background(), map[string]any{
		"domain":  "x.com",
		"website": "x.com",
	})
	if err == nil {
		t.Fatal("colliding payload must fail")
	}
	if fake.created != nil {
		t.Error("API was called despite a rejected payload")
	}
}

func TestBatchSearch(t *testing.T) {
	fake := &fakeAttio{responses: []string{
		`{"data":[{"id":{"record_id":"rec_1"},"values":{"name":[{"value":"Acme"}]}}]}`,
		`{"data":[{"id":{"record_id":"rec_2"},"values":{"name":[{"value":"Globex"}]}}]}`,
	}}
	client := newTestClient(t, fake)

	items, err := client.BatchSearch(context.Background(), "companies", []string{"acme", "globex"}, 10)
	if err != nil {
		t.Fatalf("BatchSearch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d", len(items))
	}
	for i, item := range items {
		if !item.OK() {
			t.Errorf("item %d failed: %v", i, item.Err)
		}
		if len(item.Records) != 1 {
			t.Errorf("item %d records = %+v", i, item.Records)
		}
	}
}

func TestValidateCategories_Local(t *testing.T) {
	client := newTestClient(t, &fakeAttio{})

	result := client.ValidateCategories("Tecnology")
	if result.IsValid {
		t.Fatal("IsValid = true for a typo")
	}
	if len(result.Suggestions) == 0 || result.Suggestions[0] != "Technology" {
		t.Errorf("Suggestions = %v", result.Suggestions)
	}
}

func TestPing(t *testing.T) {
	client := newTestClient(t, &fakeAttio{})

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
