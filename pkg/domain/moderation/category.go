package moderation

type Category string

const (
	CategoryContent Category = "Content"
	CategoryProfile Category = "Profile"
	CategoryImage   Category = "Image"
)

func (c Category) ViolationMessage(reason string) string {
	if reason == "" {
		reason = DefaultUnsafeReason
	}
	return string(c) + " Violation: " + reason
}
