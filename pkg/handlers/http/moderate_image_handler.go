package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"

	appModeration "github.com/MyCircle/moderation/pkg/app/moderation"
	"github.com/MyCircle/moderation/pkg/common"
	"github.com/MyCircle/moderation/pkg/domain/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const imageFormField = "image"

type moderateImageHandler struct {
	logger    *logrus.Logger
	validator appModeration.Validator
}

func NewModerateImageHandler(logger *logrus.Logger, validator appModeration.Validator) Handler {
	return &moderateImageHandler{
		logger:    logger,
		validator: validator,
	}
}

// Handle @Summary Moderate an image upload
// @Description Checks an uploaded image. Rejected uploads are deleted.
// @Tags Moderation
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]interface{} "Image allowed"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 422 {object} map[string]interface{} "Image rejected"
// @Router /api/v1/moderation/images [post]
func (h *moderateImageHandler) Handle(c *fiber.Ctx) error {
	fh, err := c.FormFile(imageFormField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
	}
	if fh.Size > common.MaxImageUploadSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "image is too large"})
	}

	tmp, err := os.CreateTemp("", "moderation-upload-*")
	if err != nil {
		h.logger.WithError(err).Error("failed to create temporary upload file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store upload"})
	}
	path := tmp.Name()
	_ = tmp.Close()
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			h.logger.WithError(err).Warn("failed to remove temporary upload")
		}
	}()

	if err := c.SaveFile(fh, path); err != nil {
		h.logger.WithError(err).Error("failed to save upload")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store upload"})
	}

	mimeType, err := detectImageType(path, fh.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := h.validator.ValidateImageSubmission(
		c.UserContext(),
		moderation.FileImage{Path: path, MIMEType: mimeType},
		func(context.Context) error { return os.Remove(path) },
	)
	logWarning(h.logger, c, "image", result.Warning)
	return writeModerationResult(c, result.Err())
}

var errNotAnImage = errors.New("uploaded file is not an image")

// detectImageType trusts the declared type when it is an image type and
// sniffs the file header otherwise.
func detectImageType(path, declared string) (string, error) {
	if strings.HasPrefix(declared, "image/") {
		return declared, nil
	}
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	sniffed := http.DetectContentType(head[:n])
	if !strings.HasPrefix(sniffed, "image/") {
		return "", errNotAnImage
	}
	return sniffed, nil
}
