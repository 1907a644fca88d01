package dependency_container

import (
	"fmt"

	appModeration "github.com/MyCircle/moderation/pkg/app/moderation"
	"github.com/MyCircle/moderation/pkg/config"
	handlers "github.com/MyCircle/moderation/pkg/handlers/http"
	"github.com/MyCircle/moderation/pkg/infra/breaker"
	"github.com/MyCircle/moderation/pkg/infra/classifier"
	"github.com/MyCircle/moderation/pkg/infra/lexical"
	providersFactory "github.com/MyCircle/moderation/pkg/infra/providers/factory"
	"github.com/MyCircle/moderation/pkg/middleware"
	"github.com/MyCircle/moderation/pkg/server"
	"github.com/MyCircle/moderation/pkg/server/router"
	"github.com/sirupsen/logrus"
)

var exposedHeaders = []string{"X-Request-Id"}

type Container struct {
	ProviderLocator        providersFactory.ProviderLocator
	CircuitBreaker         breaker.CircuitBreaker
	Classifier             classifier.Classifier
	ProfanityFilter        *lexical.Filter
	Validator              appModeration.Validator
	HandlerTransport       *handlers.HandlerTransport
	MiddlewareTransport    *middleware.Transport
	PanicRecoverMiddleware middleware.Middleware
	RequestIDMiddleware    middleware.Middleware
	MetricsMiddleware      middleware.Middleware
	CORSGlobalMiddleware   middleware.Middleware
	Server                 *server.ModerationServer
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	// Credential overrides the config-backed credential lookup.
	Credential classifier.CredentialSource
}

func NewContainer(di ContainerDI) (*Container, error) {
	if di.Cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if di.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	credential := di.Credential
	if credential == nil {
		credential = config.APIKey()
	}

	providerLocator := providersFactory.NewProviderLocator()

	var cb breaker.CircuitBreaker = breaker.Passthrough{}
	if di.Cfg.Classifier.Breaker.Enabled {
		cb = breaker.NewCircuitBreaker(
			"classifier-"+di.Cfg.Classifier.Provider,
			di.Cfg.Classifier.Breaker.Timeout,
			di.Cfg.Classifier.Breaker.MaxFailures,
		)
	}

	classifierClient := classifier.NewClient(classifier.Config{
		Provider:            di.Cfg.Classifier.Provider,
		Model:               di.Cfg.Classifier.Model,
		Timeout:             di.Cfg.Classifier.Timeout,
		MaxTokens:           di.Cfg.Classifier.MaxTokens,
		Credential:          credential,
		DisabledLogInterval: di.Cfg.Moderation.DisabledLogInterval,
	}, providerLocator, cb, di.Logger)

	profanityFilter := lexical.Default()
	validator := appModeration.NewValidator(di.Logger, profanityFilter, classifierClient)

	handlerTransport := &handlers.HandlerTransport{
		GetVersionHandler: handlers.NewGetVersionHandler(di.Logger),

		ModeratePostHandler:    handlers.NewModeratePostHandler(di.Logger, validator),
		ModerateProfileHandler: handlers.NewModerateProfileHandler(di.Logger, validator),
		ModerateImageHandler:   handlers.NewModerateImageHandler(di.Logger, validator),

		QuickRepliesHandler:    handlers.NewQuickRepliesHandler(di.Logger, validator),
		PostAnalysisHandler:    handlers.NewPostAnalysisHandler(di.Logger, validator),
		PostExplanationHandler: handlers.NewPostExplanationHandler(di.Logger, validator),
	}

	panicRecoverMiddleware := middleware.NewPanicRecoverMiddleware(di.Logger)
	requestIDMiddleware := middleware.NewRequestIDMiddleware()
	metricsMiddleware := middleware.NewMetricsMiddleware()
	corsGlobalMiddleware := middleware.NewCORSGlobalMiddleware(
		di.Cfg.Server.AllowedOrigins,
		[]string{"GET", "POST", "OPTIONS"},
		false,
		exposedHeaders,
		"600",
	)
	middlewareTransport := middleware.NewTransport(
		panicRecoverMiddleware,
		requestIDMiddleware,
		metricsMiddleware,
		corsGlobalMiddleware,
	)

	moderationServer := server.NewModerationServer(server.ModerationServerDI{
		Config: di.Cfg,
		Logger: di.Logger,
		Routers: []router.ServerRouter{
			router.NewModerationRouter(middlewareTransport, handlerTransport),
		},
	})

	return &Container{
		ProviderLocator:        providerLocator,
		CircuitBreaker:         cb,
		Classifier:             classifierClient,
		ProfanityFilter:        profanityFilter,
		Validator:              validator,
		HandlerTransport:       handlerTransport,
		MiddlewareTransport:    middlewareTransport,
		PanicRecoverMiddleware: panicRecoverMiddleware,
		RequestIDMiddleware:    requestIDMiddleware,
		MetricsMiddleware:      metricsMiddleware,
		CORSGlobalMiddleware:   corsGlobalMiddleware,
		Server:                 moderationServer,
	}, nil
}
