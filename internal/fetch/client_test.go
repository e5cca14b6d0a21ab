package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/eopulse/internal/cache"
	"github.com/ppiankov/eopulse/internal/model"
)

func testConfig(endpoint string) model.APIConfig {
	return model.APIConfig{
		Endpoint:          endpoint,
		Timeout:           5 * time.Second,
		UserAgent:         "eopulse-test",
		MaxBodyBytes:      1_000_000,
		RequestsPerSecond: 1000,
		Burst:             10,
		PageWorkers:       3,
	}
}

// corpusServer serves a three-page corpus with one document per page.
func corpusServer(t *testing.T, requests *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		page := r.URL.Query().Get("page")
		if page == "" {
			page = "1"
		}
		fmt.Fprintf(w, `{
			"count": 3,
			"total_pages": 3,
			"results": [{
				"document_number": "doc-%s",
				"title": "Order %s",
				"signing_date": "2021-01-2%s"
			}]
		}`, page, page, page)
	}))
}

func TestFetchAll_ConcatenatesPagesInOrder(t *testing.T) {
	srv := corpusServer(t, nil)
	defer srv.Close()

	client := NewClient(testConfig(srv.URL+"/api/v1/documents.json?per_page=1"), nil)
	docs, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3", len(docs))
	}
	for i, want := range []string{"doc-1", "doc-2", "doc-3"} {
		if docs[i].DocumentNumber != want {
			t.Errorf("docs[%d] = %s, want %s", i, docs[i].DocumentNumber, want)
		}
	}
	if docs[0].SigningDate != model.MustDate("2021-01-21") {
		t.Errorf("signing date not decoded: %v", docs[0].SigningDate)
	}
}

func TestFetchAll_SinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count":1,"total_pages":1,"results":[{"document_number":"only","title":"t","signing_date":"2017-02-01"}]}`)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	docs, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(docs) != 1 || docs[0].DocumentNumber != "only" {
		t.Fatalf("docs = %+v", docs)
	}
}

func TestFetchAll_SecondRunServedFromCache(t *testing.T) {
	var requests atomic.Int64
	srv := corpusServer(t, &requests)
	defer srv.Close()

	store := cache.NewDiskCache(t.TempDir(), time.Hour)
	client := NewClient(testConfig(srv.URL), store)

	if _, err := client.FetchAll(context.Background()); err != nil {
		t.Fatalf("first FetchAll: %v", err)
	}
	hits := requests.Load()
	if hits != 3 {
		t.Fatalf("first run made %d requests, want 3", hits)
	}

	docs, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("second FetchAll: %v", err)
	}
	if requests.Load() != hits {
		t.Errorf("second run hit the network (%d requests total)", requests.Load())
	}
	if len(docs) != 3 {
		t.Errorf("cached run returned %d documents, want 3", len(docs))
	}
}

func TestFetchAll_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nil)
	if _, err := client.FetchAll(context.Background()); err == nil {
		t.Fatal("expected an error for a 502 response")
	}
}
