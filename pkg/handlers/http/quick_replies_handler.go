package http

import (
	appModeration "github.com/MyCircle/moderation/pkg/app/moderation"
	"github.com/MyCircle/moderation/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type quickRepliesHandler struct {
	logger    *logrus.Logger
	validator appModeration.Validator
}

func NewQuickRepliesHandler(logger *logrus.Logger, validator appModeration.Validator) Handler {
	return &quickRepliesHandler{
		logger:    logger,
		validator: validator,
	}
}

// Handle @Summary Suggest chat replies
// @Description Returns three short reply suggestions for a conversation
// @Tags Assist
// @Accept json
// @Produce json
// @Param request body request.QuickRepliesRequest true "Conversation"
// @Success 200 {object} map[string]interface{} "Suggestions"
// @Router /api/v1/assist/quick-replies [post]
func (h *quickRepliesHandler) Handle(c *fiber.Ctx) error {
	var req request.QuickRepliesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	replies := h.validator.GenerateQuickReplies(c.UserContext(), req.History())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"replies": replies})
}
