package http

import (
	appModeration "github.com/MyCircle/moderation/pkg/app/moderation"
	"github.com/MyCircle/moderation/pkg/domain/moderation"
	"github.com/MyCircle/moderation/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderateProfileHandler struct {
	logger    *logrus.Logger
	validator appModeration.Validator
}

func NewModerateProfileHandler(logger *logrus.Logger, validator appModeration.Validator) Handler {
	return &moderateProfileHandler{
		logger:    logger,
		validator: validator,
	}
}

// Handle @Summary Moderate a profile edit
// @Description Checks a display name and bio before a profile is updated
// @Tags Moderation
// @Accept json
// @Produce json
// @Param request body request.ModerateProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{} "Profile allowed"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 422 {object} map[string]interface{} "Profile rejected"
// @Router /api/v1/moderation/profiles [post]
func (h *moderateProfileHandler) Handle(c *fiber.Ctx) error {
	var req request.ModerateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := h.validator.ValidateTextSubmission(
		c.UserContext(),
		moderation.CategoryProfile,
		moderation.ProfilePayload(req.DisplayName, req.Bio),
	)
	logWarning(h.logger, c, "profile", result.Warning)
	return writeModerationResult(c, result.Err())
}
