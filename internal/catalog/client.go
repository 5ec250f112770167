package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"alcyxob/trainer-api/internal/config"
	"alcyxob/trainer-api/internal/domain"
)

// --- Error Definitions ---
var (
	ErrMissingAPIKey = errors.New("exercisedb api key is not configured")
	ErrUnavailable   = errors.New("exercise catalog is unavailable")
)

// CDN bases for ExerciseDB media. The API returns relative paths on some
// plans; absolute URLs are passed through untouched.
const (
	imageCDNBase = "https://exercisedb.b-cdn.net/exercises-thumbnails"
	videoCDNBase = "https://exercisedb.b-cdn.net/exercises-videos"
)

// Fetcher retrieves the full exercise list from the external catalog.
type Fetcher interface {
	FetchExercises(ctx context.Context) ([]domain.ExerciseRecord, error)
}

// Client is the ExerciseDB (RapidAPI) catalog client.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	pageLimit  int
	httpClient *http.Client
}

// NewClient creates an ExerciseDB client from config.
func NewClient(cfg config.ExerciseDBConfig) *Client {
	return &Client{
		baseURL:   "https://" + cfg.Host,
		host:      cfg.Host,
		apiKey:    cfg.APIKey,
		pageLimit: cfg.PageLimit,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchExercises performs one page-limited catalog fetch and normalizes
// media URLs to absolute form.
func (c *Client) FetchExercises(ctx context.Context) ([]domain.ExerciseRecord, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/exercises", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(c.pageLimit))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: catalog responded with status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	records, err := decodeCatalog(body)
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].ImageURL = absoluteMediaURL(records[i].ImageURL, imageCDNBase)
		records[i].VideoURL = absoluteMediaURL(records[i].VideoURL, videoCDNBase)
	}
	return records, nil
}

// decodeCatalog tolerates both response shapes the API is known to return:
// a bare array and an object wrapping the array in a "data" field. Any other
// valid JSON shape yields an empty catalog rather than an error.
func decodeCatalog(body []byte) ([]domain.ExerciseRecord, error) {
	var records []domain.ExerciseRecord
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var wrapper struct {
		Data []domain.ExerciseRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil {
		if wrapper.Data == nil {
			return []domain.ExerciseRecord{}, nil
		}
		return wrapper.Data, nil
	}

	var anything interface{}
	if err := json.Unmarshal(body, &anything); err != nil {
		return nil, fmt.Errorf("%w: malformed catalog response", ErrUnavailable)
	}
	return []domain.ExerciseRecord{}, nil
}

func absoluteMediaURL(url, cdnBase string) string {
	if url == "" || strings.HasPrefix(url, "http") {
		return url
	}
	return cdnBase + "/" + url
}
