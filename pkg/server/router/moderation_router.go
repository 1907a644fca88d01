package router

import (
	"errors"

	handlers "github.com/MyCircle/moderation/pkg/handlers/http"
	"github.com/MyCircle/moderation/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

var ErrInvalidHandlerTransport = errors.New("invalid handler transport")

type moderationRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
}

func NewModerationRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
) ServerRouter {
	return &moderationRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *moderationRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport == nil {
		return ErrInvalidHandlerTransport
	}
	h := r.handlerTransport

	if r.middlewareTransport != nil {
		if mws := r.middlewareTransport.GetMiddlewares(); len(mws) > 0 {
			router.Use(mws...)
		}
	}

	router.Get("/version", h.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		moderation := v1.Group("/moderation")
		{
			moderation.Post("/posts", h.ModeratePostHandler.Handle)
			moderation.Post("/profiles", h.ModerateProfileHandler.Handle)
			moderation.Post("/images", h.ModerateImageHandler.Handle)
		}

		assist := v1.Group("/assist")
		{
			assist.Post("/quick-replies", h.QuickRepliesHandler.Handle)
			assist.Post("/post-analysis", h.PostAnalysisHandler.Handle)
			assist.Post("/post-explanation", h.PostExplanationHandler.Handle)
		}
	}
	return nil
}
