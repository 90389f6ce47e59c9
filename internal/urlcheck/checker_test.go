package urlcheck

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
)

func TestCheckAllClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/moved":
			w.Header().Set("Location", "/elsewhere")
			w.WriteHeader(http.StatusMovedPermanently)
		case "/blocked":
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewChecker(5*time.Second, 4, nil)
	urls := []string{
		srv.URL + "/ok",
		srv.URL + "/moved",
		srv.URL + "/blocked",
		srv.URL + "/missing",
	}
	results := c.CheckAll(context.Background(), urls)

	require.Len(t, results, 4)
	assert.Equal(t, urls[0], results[0].URL, "results keep input order")
	assert.Equal(t, "Working", results[0].Status)
	assert.Equal(t, "Redirect - Status Code: 301", results[1].Status)
	assert.Equal(t, "Blocked - Captcha Error", results[2].Status)
	assert.Equal(t, "Not Working - Status Code: 404", results[3].Status)
}

func TestCheckAllUnreachable(t *testing.T) {
	c := NewChecker(time.Second, 1, nil)

	results := c.CheckAll(context.Background(), []string{"http://127.0.0.1:1/nope"})

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Status, "Failed -")
}

func TestCollectURLs(t *testing.T) {
	payload := map[string]any{
		"general": map[string]any{"productUrl": "https://example.com/product"},
		"images": []any{
			map[string]any{"src": "https://example.com/1.jpg"},
			map[string]any{"src": "https://example.com/2.jpg"},
		},
		"attachments": []any{
			map[string]any{"attachmentLocation": "https://example.com/a.pdf"},
		},
		"features": []any{"no url here"},
	}

	urls := CollectURLs(payload)

	assert.ElementsMatch(t, []string{
		"https://example.com/product",
		"https://example.com/1.jpg",
		"https://example.com/2.jpg",
		"https://example.com/a.pdf",
	}, urls)
}

func TestCollectRecordURLs(t *testing.T) {
	records := []record.Record{
		{"images": []any{map[string]any{"src": "https://example.com/1.jpg"}}},
		{"images": []any{map[string]any{"src": "https://example.com/2.jpg"}}},
	}

	urls := CollectRecordURLs(records)

	assert.ElementsMatch(t, []string{
		"https://example.com/1.jpg",
		"https://example.com/2.jpg",
	}, urls)
}

func TestBuildWorkbook(t *testing.T) {
	data, err := BuildWorkbook([]Result{
		{URL: "https://example.com/1.jpg", Status: "Working"},
		{URL: "https://example.com/2.jpg", Status: "Timeout"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	rows, err := f.GetRows("URL Status")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"URL", "Status"}, rows[0])
	assert.Equal(t, []string{"https://example.com/1.jpg", "Working"}, rows[1])
	assert.Equal(t, []string{"https://example.com/2.jpg", "Timeout"}, rows[2])
}
