package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	GetVersionHandler Handler

	// Moderation
	ModeratePostHandler    Handler
	ModerateProfileHandler Handler
	ModerateImageHandler   Handler

	// Assist
	QuickRepliesHandler    Handler
	PostAnalysisHandler    Handler
	PostExplanationHandler Handler
}
