package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, AppName, info.AppName)
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	info := Info{
		AppName:   "MyCircle Moderation",
		Version:   "1.2.3",
		GitCommit: "abc123",
		BuildDate: "2026-01-02",
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
	}

	assert.Equal(t, "MyCircle Moderation 1.2.3 (commit abc123, built 2026-01-02, go1.24.0 linux/amd64)", info.String())
}
