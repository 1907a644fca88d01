package common

import "time"

const (
	RequestIDHeader = "X-Request-Id"

	// MaxImageUploadSize bounds multipart image uploads.
	MaxImageUploadSize = 10 << 20

	DisabledWarningInterval = 10 * time.Minute
)
