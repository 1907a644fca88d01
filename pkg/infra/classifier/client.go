package classifier

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/MyCircle/moderation/pkg/domain/moderation"
	"github.com/MyCircle/moderation/pkg/infra/breaker"
	infralogger "github.com/MyCircle/moderation/pkg/infra/logger"
	"github.com/MyCircle/moderation/pkg/infra/prometheus"
	"github.com/MyCircle/moderation/pkg/infra/providers"
	"github.com/MyCircle/moderation/pkg/infra/providers/factory"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTimeout             = 15 * time.Second
	DefaultDisabledLogInterval = 10 * time.Minute
)

const (
	OpCheckText         = "check_text"
	OpCheckImage        = "check_image"
	OpQuickReplies      = "quick_replies"
	OpPostAnalysis      = "post_analysis"
	OpPostExplanation   = "post_explanation"
	disabledThrottleKey = "classifier_disabled"
	resultOK            = "ok"
	resultSkipped       = "skipped"
	resultDisabled      = "disabled"
	resultMalformed     = "malformed"
	resultTimeout       = "timeout"
	resultBreakerOpen   = "breaker_open"
	resultProviderError = "provider_error"
	resultPanic         = "panic"
)

var defaultModels = map[string]string{
	factory.ProviderGemini:    "gemini-2.0-flash",
	factory.ProviderGoogle:    "gemini-2.0-flash",
	factory.ProviderOpenAI:    "gpt-4o-mini",
	factory.ProviderAnthropic: "claude-3-5-haiku-latest",
}

type Config struct {
	Provider            string
	Model               string
	Timeout             time.Duration
	MaxTokens           int
	Credential          CredentialSource
	DisabledLogInterval time.Duration
}

//go:generate mockery --name=Classifier --dir=. --output=./mocks --filename=classifier_mock.go --case=underscore --with-expecter

// Classifier wraps a generative model used for content safety and for the
// auxiliary assistant features. No method returns an error: every failure
// resolves to the documented fallback for that operation.
type Classifier interface {
	CheckTextSafety(ctx context.Context, text string) moderation.SafetyVerdict
	CheckImageSafety(ctx context.Context, data []byte, mimeType string) moderation.SafetyVerdict
	GenerateQuickReplies(ctx context.Context, history []moderation.ChatMessage) []string
	GeneratePostAnalysis(ctx context.Context, title, description string) moderation.PostAnalysis
	GeneratePostExplanation(ctx context.Context, title, description string) moderation.PostExplanation
}

type client struct {
	cfg       Config
	locator   factory.ProviderLocator
	breaker   breaker.CircuitBreaker
	logger    *logrus.Logger
	throttled *infralogger.Throttled
}

func NewClient(
	cfg Config,
	locator factory.ProviderLocator,
	cb breaker.CircuitBreaker,
	logger *logrus.Logger,
) Classifier {
	if cfg.Provider == "" {
		cfg.Provider = factory.ProviderGemini
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[strings.ToLower(cfg.Provider)]
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.DisabledLogInterval <= 0 {
		cfg.DisabledLogInterval = DefaultDisabledLogInterval
	}
	if cb == nil {
		cb = breaker.Passthrough{}
	}
	return &client{
		cfg:       cfg,
		locator:   locator,
		breaker:   cb,
		logger:    logger,
		throttled: infralogger.NewThrottled(logger, cfg.DisabledLogInterval),
	}
}

func (c *client) CheckTextSafety(ctx context.Context, text string) moderation.SafetyVerdict {
	if strings.TrimSpace(text) == "" {
		c.record(OpCheckText, resultSkipped)
		return moderation.Safe()
	}
	return execute(ctx, c, OpCheckText, verdictFallback,
		func(ctx context.Context, apiKey string) (moderation.SafetyVerdict, error) {
			reply, err := c.ask(ctx, OpCheckText, apiKey, textSafetyRequest(text))
			if err != nil {
				return moderation.SafetyVerdict{}, err
			}
			return ParseVerdict(reply)
		})
}

func (c *client) CheckImageSafety(ctx context.Context, data []byte, mimeType string) moderation.SafetyVerdict {
	if len(data) == 0 {
		c.record(OpCheckImage, resultSkipped)
		return moderation.Safe()
	}
	attachment := providers.Attachment{Data: data, MIMEType: mimeType}
	return execute(ctx, c, OpCheckImage, verdictFallback,
		func(ctx context.Context, apiKey string) (moderation.SafetyVerdict, error) {
			reply, err := c.ask(ctx, OpCheckImage, apiKey, imageSafetyRequest(), attachment)
			if err != nil {
				return moderation.SafetyVerdict{}, err
			}
			return ParseVerdict(reply)
		})
}

func (c *client) GenerateQuickReplies(ctx context.Context, history []moderation.ChatMessage) []string {
	if len(history) == 0 {
		c.record(OpQuickReplies, resultSkipped)
		return DefaultQuickReplies()
	}
	return execute(ctx, c, OpQuickReplies,
		func(error) []string { return DefaultQuickReplies() },
		func(ctx context.Context, apiKey string) ([]string, error) {
			reply, err := c.ask(ctx, OpQuickReplies, apiKey, quickRepliesRequest(history))
			if err != nil {
				return nil, err
			}
			replies, err := ParseQuickReplies(reply)
			if err != nil {
				return nil, err
			}
			return normalizeReplies(replies), nil
		})
}

func (c *client) GeneratePostAnalysis(ctx context.Context, title, description string) moderation.PostAnalysis {
	return execute(ctx, c, OpPostAnalysis,
		func(error) moderation.PostAnalysis { return DefaultPostAnalysis() },
		func(ctx context.Context, apiKey string) (moderation.PostAnalysis, error) {
			reply, err := c.ask(ctx, OpPostAnalysis, apiKey, postAnalysisRequest(title, description))
			if err != nil {
				return moderation.PostAnalysis{}, err
			}
			return ParsePostAnalysis(reply)
		})
}

func (c *client) GeneratePostExplanation(ctx context.Context, title, description string) moderation.PostExplanation {
	return execute(ctx, c, OpPostExplanation,
		func(error) moderation.PostExplanation { return DefaultPostExplanation() },
		func(ctx context.Context, apiKey string) (moderation.PostExplanation, error) {
			reply, err := c.ask(ctx, OpPostExplanation, apiKey, postExplanationRequest(title, description))
			if err != nil {
				return moderation.PostExplanation{}, err
			}
			return ParsePostExplanation(reply)
		})
}

// execute runs fn behind the credential guard and converts every failure,
// panics included, into fallback(err).
func execute[T any](
	ctx context.Context,
	c *client,
	op string,
	fallback func(error) T,
	fn func(ctx context.Context, apiKey string) (T, error),
) (result T) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: panic: %v", moderation.ErrProviderFailure, r)
			c.logger.WithFields(logrus.Fields{
				"operation": op,
				"panic":     r,
				"stack":     string(debug.Stack()),
			}).Error("panic recovered in classifier operation")
			c.record(op, resultPanic)
			result = fallback(err)
		}
	}()

	apiKey, err := c.credential()
	if err != nil {
		c.throttled.Warn(disabledThrottleKey, logrus.Fields{
			"provider": c.cfg.Provider,
			"reason":   err.Error(),
		}, "AI moderation disabled, serving offline fallbacks")
		c.record(op, resultDisabled)
		return fallback(err)
	}

	out, err := fn(ctx, apiKey)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"operation": op,
			"provider":  c.cfg.Provider,
		}).Warn("classifier operation failed, serving fallback")
		c.record(op, resultLabel(err))
		return fallback(err)
	}
	c.record(op, resultOK)
	return out
}

func (c *client) credential() (string, error) {
	var key string
	if c.cfg.Credential != nil {
		key = c.cfg.Credential()
	}
	if err := ValidateCredential(key); err != nil {
		return "", err
	}
	return strings.TrimSpace(key), nil
}

func (c *client) ask(
	ctx context.Context,
	op string,
	apiKey string,
	req request,
	attachments ...providers.Attachment,
) (string, error) {
	provider, err := c.locator.Get(c.cfg.Provider)
	if err != nil {
		return "", fmt.Errorf("%w: %w", moderation.ErrProviderFailure, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	config := &providers.Config{
		Credentials:  providers.Credentials{ApiKey: apiKey},
		Model:        c.cfg.Model,
		MaxTokens:    c.cfg.MaxTokens,
		Temperature:  req.temperature,
		SystemPrompt: req.system,
		Instructions: req.instructions,
		JSONOutput:   true,
	}

	var resp *providers.CompletionResponse
	start := time.Now()
	err = c.breaker.Execute(func() error {
		r, err := provider.Ask(ctx, config, req.prompt, attachments...)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	prometheus.ClassifierLatency.WithLabelValues(op).Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return "", fmt.Errorf("%w: %w", moderation.ErrProviderFailure, err)
	}
	if resp.Empty() {
		return "", fmt.Errorf("%w: empty response", moderation.ErrMalformedResponse)
	}
	c.logger.WithFields(logrus.Fields{
		"operation":    op,
		"provider":     resp.Provider,
		"model":        resp.Model,
		"total_tokens": resp.Usage.TotalTokens,
	}).Debug("classifier call completed")
	return resp.Response, nil
}

func (c *client) record(op, result string) {
	prometheus.ClassifierCallsTotal.WithLabelValues(op, result).Inc()
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, moderation.ErrMalformedResponse):
		return resultMalformed
	case errors.Is(err, context.DeadlineExceeded):
		return resultTimeout
	case errors.Is(err, breaker.ErrOpen):
		return resultBreakerOpen
	default:
		return resultProviderError
	}
}
