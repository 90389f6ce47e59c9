package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportAccumulation(t *testing.T) {
	r := NewReport()
	r.AddIssue("Model B", "issue one in a.json - Model B")
	r.AddIssue("Model A", "issue two in a.json - Model A")
	r.AddIssue("Model B", "issue three in a.json - Model B")
	r.AddError("Invalid JSON in file: bad.json")

	assert.Equal(t, []string{"Model B", "Model A"}, r.Models(), "first-seen order")
	assert.Equal(t, 3, r.TotalIssues())
	assert.Len(t, r.Errors, 1)
}

func TestBuildText(t *testing.T) {
	r := NewReport()
	r.TotalModels = 3
	r.ProcessedModels = 2
	r.FailedModels = 1
	r.AddIssue("CAT 259D", "Formatted manufacturer: 'cat' → 'Cat' in a.json - CAT 259D")
	r.AddIssue("CAT 259D", "Removed 2 empty feature(s) in a.json - CAT 259D")
	r.AddError("Invalid JSON in file: bad.json")

	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	text := BuildText(r, now)

	assert.Contains(t, text, "**Generated on:** 2025-03-15 10:30:00")
	assert.Contains(t, text, "- **Total Models Processed:** 3")
	assert.Contains(t, text, "- **Successfully Formatted:** 2")
	assert.Contains(t, text, "- **Failed Models:** 1")
	assert.Contains(t, text, "- **Total Issues Fixed:** 2")

	assert.Contains(t, text, "### CAT 259D")
	assert.Contains(t, text, "1. Formatted manufacturer: 'cat' → 'Cat'\n")
	assert.Contains(t, text, "2. Removed 2 empty feature(s)\n")
	assert.NotContains(t, text, "in a.json", "file context stripped from rendered issues")

	assert.Contains(t, text, "- Invalid JSON in file: bad.json")
}

func TestBuildTextEmptyReport(t *testing.T) {
	text := BuildText(NewReport(), time.Now())

	assert.Contains(t, text, "No issues found")
	assert.Contains(t, text, "No errors encountered!")
}
