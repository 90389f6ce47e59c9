// Package report accumulates everything the pipeline fixed, dropped, or
// failed on during a batch, and renders it as a human-readable document.
package report

// Report aggregates per-batch outcomes. It grows monotonically while the
// batch runs and is never mutated after batch completion.
type Report struct {
	TotalModels     int
	ProcessedModels int
	FailedModels    int

	IssuesByModel map[string][]string
	Errors        []string

	modelOrder []string
}

func NewReport() *Report {
	return &Report{
		IssuesByModel: make(map[string][]string),
	}
}

// AddIssue appends an issue to a model's list, keeping first-seen model order
// for rendering.
func (r *Report) AddIssue(modelName, issue string) {
	if _, ok := r.IssuesByModel[modelName]; !ok {
		r.modelOrder = append(r.modelOrder, modelName)
	}
	r.IssuesByModel[modelName] = append(r.IssuesByModel[modelName], issue)
}

// AddError appends a batch-level error string.
func (r *Report) AddError(err string) {
	r.Errors = append(r.Errors, err)
}

// Models returns model names in first-seen order.
func (r *Report) Models() []string {
	return r.modelOrder
}

// TotalIssues counts issues across all models.
func (r *Report) TotalIssues() int {
	total := 0
	for _, issues := range r.IssuesByModel {
		total += len(issues)
	}
	return total
}
