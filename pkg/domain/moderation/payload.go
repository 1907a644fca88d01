package moderation

import (
	"context"
	"fmt"
	"os"
	"strings"
)

type FieldName string

const (
	FieldTitle       FieldName = "title"
	FieldDescription FieldName = "description"
	FieldBio         FieldName = "bio"
	FieldDisplayName FieldName = "displayName"
)

type TextField struct {
	Name  FieldName
	Value string
}

// TextPayload is an ordered list of fields; lexical checks run in this order.
type TextPayload []TextField

func PostPayload(title, description string) TextPayload {
	return TextPayload{
		{Name: FieldTitle, Value: title},
		{Name: FieldDescription, Value: description},
	}
}

func ProfilePayload(displayName, bio string) TextPayload {
	return TextPayload{
		{Name: FieldDisplayName, Value: displayName},
		{Name: FieldBio, Value: bio},
	}
}

// Combined joins the non-empty values with a single space.
func (p TextPayload) Combined() string {
	parts := make([]string, 0, len(p))
	for _, f := range p {
		if v := strings.TrimSpace(f.Value); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

//go:generate mockery --name=ImageSource --dir=. --output=./mocks --filename=image_source_mock.go --case=underscore --with-expecter
type ImageSource interface {
	Read(ctx context.Context) (data []byte, mimeType string, err error)
}

type InlineImage struct {
	Data     []byte
	MIMEType string
}

func (i InlineImage) Read(_ context.Context) ([]byte, string, error) {
	return i.Data, i.MIMEType, nil
}

// FileImage reads an already persisted temporary upload.
type FileImage struct {
	Path     string
	MIMEType string
}

func (f FileImage) Read(ctx context.Context) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image %s: %w", f.Path, err)
	}
	return data, f.MIMEType, nil
}
