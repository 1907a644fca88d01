package request

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// limits count characters, not bytes
const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	maxDisplayNameLength = 100
	maxBioLength         = 1000
)

type ModeratePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r *ModeratePostRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("title or description is required")
	}
	if utf8.RuneCountInString(r.Title) > maxTitleLength {
		return fmt.Errorf("title must be at most %d characters", maxTitleLength)
	}
	if utf8.RuneCountInString(r.Description) > maxDescriptionLength {
		return fmt.Errorf("description must be at most %d characters", maxDescriptionLength)
	}
	return nil
}

type ModerateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
}

func (r *ModerateProfileRequest) Validate() error {
	if strings.TrimSpace(r.DisplayName) == "" && strings.TrimSpace(r.Bio) == "" {
		return fmt.Errorf("display_name or bio is required")
	}
	if utf8.RuneCountInString(r.DisplayName) > maxDisplayNameLength {
		return fmt.Errorf("display_name must be at most %d characters", maxDisplayNameLength)
	}
	if utf8.RuneCountInString(r.Bio) > maxBioLength {
		return fmt.Errorf("bio must be at most %d characters", maxBioLength)
	}
	return nil
}
