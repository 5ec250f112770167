package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alcyxob/trainer-api/internal/domain"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		baseURL:    srv.URL,
		host:       "test-host",
		apiKey:     "test-key",
		pageLimit:  200,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetchExercisesBareArrayShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-rapidapi-key"); got != "test-key" {
			t.Errorf("missing api key header, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "200" {
			t.Errorf("expected limit=200, got %q", got)
		}
		w.Write([]byte(`[{"exerciseId": "a", "name": "Alpha"}, {"exerciseId": "b", "name": "Beta"}]`))
	}))
	defer srv.Close()

	records, err := testClient(srv).FetchExercises(context.Background())
	if err != nil {
		t.Fatalf("FetchExercises: %v", err)
	}
	if len(records) != 2 || records[0].ExerciseID != "a" || records[1].ExerciseID != "b" {
		t.Fatalf("unexpected records %v", records)
	}
}

func TestFetchExercisesDataWrapperShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 1, "data": [{"exerciseId": "a", "name": "Alpha"}]}`))
	}))
	defer srv.Close()

	records, err := testClient(srv).FetchExercises(context.Background())
	if err != nil {
		t.Fatalf("FetchExercises: %v", err)
	}
	if len(records) != 1 || records[0].ExerciseID != "a" {
		t.Fatalf("expected the inner data array, got %v", records)
	}
}

func TestFetchExercisesUnrecognizedShapeIsEmpty(t *testing.T) {
	for _, body := range []string{`{"message": "hello"}`, `"just a string"`, `42`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))
		records, err := testClient(srv).FetchExercises(context.Background())
		srv.Close()
		if err != nil {
			t.Fatalf("body %s: %v", body, err)
		}
		if len(records) != 0 {
			t.Fatalf("body %s: expected empty catalog, got %v", body, records)
		}
	}
}

func TestFetchExercisesMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := testClient(srv).FetchExercises(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetchExercisesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := testClient(srv).FetchExercises(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetchExercisesMissingAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	client := testClient(srv)
	client.apiKey = ""

	_, err := client.FetchExercises(context.Background())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestFetchExercisesNormalizesRelativeMediaURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"exerciseId": "a", "imageUrl": "a.jpg", "videoUrl": "a.mp4"},
			{"exerciseId": "b", "imageUrl": "https://elsewhere.example/b.jpg", "videoUrl": "http://elsewhere.example/b.mp4"},
			{"exerciseId": "c"}
		]`))
	}))
	defer srv.Close()

	records, err := testClient(srv).FetchExercises(context.Background())
	if err != nil {
		t.Fatalf("FetchExercises: %v", err)
	}

	if records[0].ImageURL != imageCDNBase+"/a.jpg" {
		t.Fatalf("relative image not prefixed: %q", records[0].ImageURL)
	}
	if records[0].VideoURL != videoCDNBase+"/a.mp4" {
		t.Fatalf("relative video not prefixed: %q", records[0].VideoURL)
	}
	if records[1].ImageURL != "https://elsewhere.example/b.jpg" || records[1].VideoURL != "http://elsewhere.example/b.mp4" {
		t.Fatalf("absolute urls must pass through untouched: %+v", records[1])
	}
	if records[2].ImageURL != "" || records[2].VideoURL != "" {
		t.Fatalf("empty urls must stay empty: %+v", records[2])
	}
}

type countingFetcher struct {
	records []domain.ExerciseRecord
	err     error
	calls   int
}

func (f *countingFetcher) FetchExercises(_ context.Context) ([]domain.ExerciseRecord, error) {
	f.calls++
	return f.records, f.err
}

func TestCacheFetchesOnce(t *testing.T) {
	fetcher := &countingFetcher{records: []domain.ExerciseRecord{{ExerciseID: "a"}}}
	cache := NewCache(fetcher)

	for i := 0; i < 5; i++ {
		records, err := cache.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", fetcher.calls)
	}
}

func TestCacheMemoizesEmptyCatalog(t *testing.T) {
	fetcher := &countingFetcher{records: []domain.ExerciseRecord{}}
	cache := NewCache(fetcher)

	if _, err := cache.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if _, err := cache.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("an empty catalog is still a populated cache, got %d calls", fetcher.calls)
	}
}

func TestCacheDoesNotMemoizeFailures(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("down")}
	cache := NewCache(fetcher)

	if _, err := cache.Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	fetcher.err = nil
	fetcher.records = []domain.ExerciseRecord{{ExerciseID: "a"}}
	records, err := cache.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch after recovery: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected recovered fetch, got %v", records)
	}
	if fetcher.calls != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", fetcher.calls)
	}
}

func TestCacheReset(t *testing.T) {
	fetcher := &countingFetcher{records: []domain.ExerciseRecord{{ExerciseID: "a"}}}
	cache := NewCache(fetcher)

	if _, err := cache.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	cache.Reset()
	if _, err := cache.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch after Reset: %v", err)
	}
	if fetcher.calls != 2 {
		t.Fatalf("Reset must force a refetch, got %d calls", fetcher.calls)
	}
}
