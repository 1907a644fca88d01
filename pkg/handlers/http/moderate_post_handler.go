package http

import (
	appModeration "github.com/MyCircle/moderation/pkg/app/moderation"
	"github.com/MyCircle/moderation/pkg/domain/moderation"
	"github.com/MyCircle/moderation/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderatePostHandler struct {
	logger    *logrus.Logger
	validator appModeration.Validator
}

func NewModeratePostHandler(logger *logrus.Logger, validator appModeration.Validator) Handler {
	return &moderatePostHandler{
		logger:    logger,
		validator: validator,
	}
}

// Handle @Summary Moderate a post
// @Description Checks a post title and description before it is published
// @Tags Moderation
// @Accept json
// @Produce json
// @Param request body request.ModeratePostRequest true "Post content"
// @Success 200 {object} map[string]interface{} "Post allowed"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 422 {object} map[string]interface{} "Post rejected"
// @Router /api/v1/moderation/posts [post]
func (h *moderatePostHandler) Handle(c *fiber.Ctx) error {
	var req request.ModeratePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := h.validator.ValidateTextSubmission(
		c.UserContext(),
		moderation.CategoryContent,
		moderation.PostPayload(req.Title, req.Description),
	)
	logWarning(h.logger, c, "post", result.Warning)
	return writeModerationResult(c, result.Err())
}
