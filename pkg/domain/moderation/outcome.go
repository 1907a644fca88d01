package moderation

type OutcomeKind string

const (
	OutcomePass         OutcomeKind = "pass"
	OutcomeReject       OutcomeKind = "reject"
	OutcomeDegradedPass OutcomeKind = "degraded_pass"
)

// Outcome is the result of one pipeline step.
type Outcome struct {
	Kind    OutcomeKind
	Field   FieldName
	Message string
	Verdict SafetyVerdict
}

func Pass() Outcome {
	return Outcome{Kind: OutcomePass, Verdict: Safe()}
}

func Reject(field FieldName, message string, verdict SafetyVerdict) Outcome {
	return Outcome{Kind: OutcomeReject, Field: field, Message: message, Verdict: verdict}
}

func DegradedPass(warning string) Outcome {
	return Outcome{Kind: OutcomeDegradedPass, Verdict: Degraded(warning, "")}
}

// FromVerdict maps a classifier verdict onto an outcome for the given category.
func FromVerdict(category Category, v SafetyVerdict) Outcome {
	switch {
	case !v.Safe:
		return Reject("", category.ViolationMessage(v.Reason), v)
	case v.IsDegraded():
		return Outcome{Kind: OutcomeDegradedPass, Verdict: v}
	default:
		return Outcome{Kind: OutcomePass, Verdict: v}
	}
}

func (o Outcome) Warning() string {
	if o.Verdict.Warning != "" {
		return o.Verdict.Warning
	}
	return o.Verdict.ErrorNote
}

type TextResult struct {
	OK            bool      `json:"ok"`
	RejectedField FieldName `json:"rejected_field,omitempty"`
	Message       string    `json:"message,omitempty"`
	Warning       string    `json:"-"`
}

type ImageResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Warning string `json:"-"`
}
