package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/catalog-normalizer/internal/namesvc"
)

// CompleteNames implements namesvc.Completer against the Gemini
// generateContent endpoint. One chunk in, one structured JSON response out;
// the candidate text is schema-checked locally before it is trusted.
func (c *Client) CompleteNames(ctx context.Context, names []string, apiKey string) ([]string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("gemini.complete.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"names", len(names),
	)

	prompt := namesvc.BuildPrompt(names)
	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"names": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []string{"names"},
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") +
		"/v1beta/models/" + c.cfg.Model + ":generateContent"
	raw, err := c.post(ctx, endpoint, apiKey, body)
	if err != nil {
		c.logger.Error("gemini.complete.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var gc struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gc); err != nil {
		c.logger.Error("gemini.complete.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	if len(gc.Candidates) == 0 || len(gc.Candidates[0].Content.Parts) == 0 {
		c.logger.Error("gemini.complete.no_candidates",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("no candidates in gemini response")
	}
	content := strings.TrimSpace(gc.Candidates[0].Content.Parts[0].Text)
	rawContent := []byte(content)

	if err := namesvc.ValidateJSONAgainstSchema(namesvc.BuildNamesJSONSchema(), rawContent); err != nil {
		c.logger.Error("gemini.complete.schema_validation_failed",
			"req_id", rid, "error", err, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var out struct {
		Names []string `json:"names"`
	}
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.logger.Error("gemini.complete.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("unmarshal names: %w", err)
	}

	c.logger.Info("gemini.complete.ok",
		"req_id", rid,
		"names", len(out.Names),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.Names, nil
}

func (c *Client) post(ctx context.Context, url, apiKey string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("gemini response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
