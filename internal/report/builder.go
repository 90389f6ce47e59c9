package report

import (
	"fmt"
	"strings"
	"time"
)

// BuildText renders the report as one markdown document: summary counts, a
// per-model itemized issue list, then the errors section. Issue lines lose
// their embedded " in <file> - <model>" context for readability. The input
// report is not mutated.
func BuildText(r *Report, now time.Time) string {
	var b strings.Builder

	b.WriteString("# JSON Formatting & Validation Report\n")
	fmt.Fprintf(&b, "**Generated on:** %s\n\n---\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- **Total Models Processed:** %d\n", r.TotalModels)
	fmt.Fprintf(&b, "- **Successfully Formatted:** %d\n", r.ProcessedModels)
	fmt.Fprintf(&b, "- **Failed Models:** %d\n", r.FailedModels)
	fmt.Fprintf(&b, "- **Total Issues Fixed:** %d\n\n---\n\n", r.TotalIssues())

	b.WriteString("## Issues Fixed by Model\n")
	if len(r.IssuesByModel) > 0 {
		for _, modelName := range r.Models() {
			issues := r.IssuesByModel[modelName]
			fmt.Fprintf(&b, "\n### %s\n", modelName)
			fmt.Fprintf(&b, "**Total Issues:** %d\n\n", len(issues))
			for i, issue := range issues {
				fmt.Fprintf(&b, "%d. %s\n", i+1, stripContext(issue))
			}
		}
	} else {
		b.WriteString("\nNo issues found - all models are already properly formatted!\n")
	}

	b.WriteString("\n---\n\n## Errors\n")
	if len(r.Errors) > 0 {
		for _, err := range r.Errors {
			fmt.Fprintf(&b, "- %s\n", err)
		}
	} else {
		b.WriteString("\nNo errors encountered!\n")
	}

	return b.String()
}

// stripContext drops the file/model suffix an issue carries internally.
func stripContext(issue string) string {
	if i := strings.Index(issue, " in "); i >= 0 {
		return issue[:i]
	}
	return issue
}
