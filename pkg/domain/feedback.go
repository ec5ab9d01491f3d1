package domain

// Severity ranks a quality check. It is informational: every item costs the same penalty.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// FeedbackItem is one finding of a design quality check. Never mutated after creation.
type FeedbackItem struct {
	Check      string   `json:"check"`
	Severity   Severity `json:"severity"`
	Area       string   `json:"area"`
	Issue      string   `json:"issue"`
	Problems   []string `json:"problems,omitempty"`
	Problem    string   `json:"problem,omitempty"`
	Suggestion string   `json:"suggestion"`
}

// QualityReport is the output of the design quality analyzer.
type QualityReport struct {
	QualityScore  int            `json:"quality_score"`
	FeedbackItems []FeedbackItem `json:"feedback_items"`
}
