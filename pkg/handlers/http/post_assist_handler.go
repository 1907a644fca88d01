package http

import (
	appModeration "github.com/MyCircle/moderation/pkg/app/moderation"
	"github.com/MyCircle/moderation/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type postAnalysisHandler struct {
	logger    *logrus.Logger
	validator appModeration.Validator
}

func NewPostAnalysisHandler(logger *logrus.Logger, validator appModeration.Validator) Handler {
	return &postAnalysisHandler{
		logger:    logger,
		validator: validator,
	}
}

// Handle @Summary Analyse a post
// @Description Returns a summary, improvement tips and a 0-100 quality score
// @Tags Assist
// @Accept json
// @Produce json
// @Param request body request.PostContentRequest true "Post content"
// @Success 200 {object} moderation.PostAnalysis "Analysis"
// @Router /api/v1/assist/post-analysis [post]
func (h *postAnalysisHandler) Handle(c *fiber.Ctx) error {
	var req request.PostContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	analysis := h.validator.GeneratePostAnalysis(c.UserContext(), req.Title, req.Description)
	return c.Status(fiber.StatusOK).JSON(analysis)
}

type postExplanationHandler struct {
	logger    *logrus.Logger
	validator appModeration.Validator
}

func NewPostExplanationHandler(logger *logrus.Logger, validator appModeration.Validator) Handler {
	return &postExplanationHandler{
		logger:    logger,
		validator: validator,
	}
}

// Handle @Summary Explain a post
// @Description Returns a plain-language explanation of a post for readers
// @Tags Assist
// @Accept json
// @Produce json
// @Param request body request.PostContentRequest true "Post content"
// @Success 200 {object} moderation.PostExplanation "Explanation"
// @Router /api/v1/assist/post-explanation [post]
func (h *postExplanationHandler) Handle(c *fiber.Ctx) error {
	var req request.PostContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	explanation := h.validator.GeneratePostExplanation(c.UserContext(), req.Title, req.Description)
	return c.Status(fiber.StatusOK).JSON(explanation)
}
