package moderation

const DefaultUnsafeReason = "Content flagged as inappropriate"

// SafetyVerdict is the result of a single safety check. Warning and ErrorNote
// describe degraded operation and never force a rejection on their own.
type SafetyVerdict struct {
	Safe      bool   `json:"safe"`
	Reason    string `json:"reason,omitempty"`
	Warning   string `json:"warning,omitempty"`
	ErrorNote string `json:"error_note,omitempty"`
}

func Safe() SafetyVerdict {
	return SafetyVerdict{Safe: true}
}

func Unsafe(reason string) SafetyVerdict {
	if reason == "" {
		reason = DefaultUnsafeReason
	}
	return SafetyVerdict{Safe: false, Reason: reason}
}

func Degraded(warning, errorNote string) SafetyVerdict {
	return SafetyVerdict{Safe: true, Warning: warning, ErrorNote: errorNote}
}

func (v SafetyVerdict) IsDegraded() bool {
	return v.Safe && (v.Warning != "" || v.ErrorNote != "")
}
