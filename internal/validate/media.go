package validate

import (
	"fmt"
	"net/url"

	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
)

// MediaValidator validates media URLs (images, videos, attachments). Entries
// supplied as bare URL strings are upgraded to the full mapping shape;
// entries with missing or invalid URLs are dropped and reported with their
// original index.
type MediaValidator struct{}

// IsValidURL checks that a URL is absolute: scheme and host both present.
func IsValidURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// ValidateImages cleans the images collection in place.
func (MediaValidator) ValidateImages(model record.Record, fileName, modelName string) []string {
	return validateSimpleMedia(model, "image", "images", fileName, modelName)
}

// ValidateVideos cleans the videos collection in place, renaming legacy keys
// (videoLocation, videoDescription, videoName) into the canonical shape.
func (MediaValidator) ValidateVideos(model record.Record, fileName, modelName string) []string {
	var issues []string

	list, ok := mediaList(model, "videos")
	if !ok {
		return issues
	}

	var valid []any
	for idx, item := range list {
		switch vid := item.(type) {
		case map[string]any:
			urlKey := ""
			if _, ok := vid["src"]; ok {
				urlKey = "src"
			} else if _, ok := vid["videoLocation"]; ok {
				urlKey = "videoLocation"
			}

			src, _ := vid[urlKey].(string)
			if urlKey == "" || !IsValidURL(src) {
				issues = append(issues, ctxIssue(fmt.Sprintf("Invalid video URL removed at index %d", idx), fileName, modelName))
				continue
			}

			if urlKey == "videoLocation" {
				vid["src"] = vid["videoLocation"]
				delete(vid, "videoLocation")
			}
			renameKey(vid, "videoDescription", "desc")
			renameKey(vid, "videoName", "longDesc")
			ensureField(vid, "desc")
			ensureField(vid, "longDesc")
			valid = append(valid, vid)
		case string:
			if !IsValidURL(vid) {
				issues = append(issues, ctxIssue(fmt.Sprintf("Invalid video URL string removed at index %d", idx), fileName, modelName))
				continue
			}
			valid = append(valid, map[string]any{"src": vid, "desc": "", "longDesc": ""})
		}
	}

	setMediaList(model, "videos", valid)
	return issues
}

// ValidateAttachments cleans the attachments collection in place. The legacy
// src key is renamed to attachmentLocation, and attachmentDescription is
// auto-populated with a running "pdf {n}" counter over valid entries only.
func (MediaValidator) ValidateAttachments(model record.Record, fileName, modelName string) []string {
	var issues []string

	list, ok := mediaList(model, "attachments")
	if !ok {
		return issues
	}

	var valid []any
	pdfCounter := 1
	for idx, item := range list {
		switch att := item.(type) {
		case map[string]any:
			urlKey := ""
			if _, ok := att["attachmentLocation"]; ok {
				urlKey = "attachmentLocation"
			} else if _, ok := att["src"]; ok {
				urlKey = "src"
			}

			loc, _ := att[urlKey].(string)
			if urlKey == "" || !IsValidURL(loc) {
				issues = append(issues, ctxIssue(fmt.Sprintf("Invalid or empty attachment URL removed at index %d", idx), fileName, modelName))
				continue
			}

			if urlKey == "src" {
				att["attachmentLocation"] = att["src"]
				delete(att, "src")
			}
			if desc, ok := att["attachmentDescription"].(string); !ok || desc == "" {
				att["attachmentDescription"] = fmt.Sprintf("pdf %d", pdfCounter)
			}
			if _, ok := att["attachmentName"]; !ok {
				att["attachmentName"] = ""
			}
			valid = append(valid, att)
			pdfCounter++
		case string:
			if !IsValidURL(att) {
				issues = append(issues, ctxIssue(fmt.Sprintf("Invalid or empty attachment URL string removed at index %d", idx), fileName, modelName))
				continue
			}
			valid = append(valid, map[string]any{
				"attachmentLocation":    att,
				"attachmentDescription": fmt.Sprintf("pdf %d", pdfCounter),
				"attachmentName":        "",
			})
			pdfCounter++
		}
	}

	setMediaList(model, "attachments", valid)
	return issues
}

// validateSimpleMedia covers the plain src/desc/longDesc collections.
func validateSimpleMedia(model record.Record, kind, field, fileName, modelName string) []string {
	var issues []string

	list, ok := mediaList(model, field)
	if !ok {
		return issues
	}

	var valid []any
	for idx, item := range list {
		switch entry := item.(type) {
		case map[string]any:
			src, _ := entry["src"].(string)
			if _, hasSrc := entry["src"]; !hasSrc || !IsValidURL(src) {
				issues = append(issues, ctxIssue(fmt.Sprintf("Invalid %s URL removed at index %d", kind, idx), fileName, modelName))
				continue
			}
			ensureField(entry, "desc")
			ensureField(entry, "longDesc")
			valid = append(valid, entry)
		case string:
			if !IsValidURL(entry) {
				issues = append(issues, ctxIssue(fmt.Sprintf("Invalid %s URL string removed at index %d", kind, idx), fileName, modelName))
				continue
			}
			valid = append(valid, map[string]any{"src": entry, "desc": "", "longDesc": ""})
		}
	}

	setMediaList(model, field, valid)
	return issues
}

// mediaList fetches a media field when it is present, non-empty, and a list.
func mediaList(model record.Record, field string) ([]any, bool) {
	raw, ok := model[field]
	if !ok || raw == nil {
		return nil, false
	}
	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	return list, true
}

// setMediaList writes back the surviving entries, nulling the field when none
// survived.
func setMediaList(model record.Record, field string, valid []any) {
	if len(valid) == 0 {
		model[field] = nil
		return
	}
	model[field] = valid
}

func renameKey(m map[string]any, from, to string) {
	if v, ok := m[from]; ok {
		m[to] = v
		delete(m, from)
	}
}

func ensureField(m map[string]any, key string) {
	if _, ok := m[key]; !ok {
		m[key] = ""
	}
}
