package moderation

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	domain "github.com/MyCircle/moderation/pkg/domain/moderation"
	"github.com/MyCircle/moderation/pkg/infra/classifier"
	"github.com/MyCircle/moderation/pkg/infra/lexical"
	"github.com/MyCircle/moderation/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	entryText  = "text"
	entryImage = "image"
)

// CleanupFunc removes an uploaded artifact after its image was rejected.
type CleanupFunc func(ctx context.Context) error

// ProfanityMatcher is the local, network-free first stage of text checks.
type ProfanityMatcher interface {
	Match(text string) (lexical.Match, bool)
}

//go:generate mockery --name=Validator --dir=. --output=./mocks --filename=validator_mock.go --case=underscore --with-expecter

// Validator gates user submissions. Its methods never fail: any internal
// error lets the submission through and is reported as a warning.
type Validator interface {
	ValidateTextSubmission(ctx context.Context, category domain.Category, fields domain.TextPayload) domain.TextResult
	ValidateImageSubmission(ctx context.Context, img domain.ImageSource, cleanup CleanupFunc) domain.ImageResult
	GenerateQuickReplies(ctx context.Context, history []domain.ChatMessage) []string
	GeneratePostAnalysis(ctx context.Context, title, description string) domain.PostAnalysis
	GeneratePostExplanation(ctx context.Context, title, description string) domain.PostExplanation
}

type validator struct {
	logger     *logrus.Logger
	profanity  ProfanityMatcher
	classifier classifier.Classifier
}

func NewValidator(
	logger *logrus.Logger,
	profanity ProfanityMatcher,
	classifier classifier.Classifier,
) Validator {
	return &validator{
		logger:     logger,
		profanity:  profanity,
		classifier: classifier,
	}
}

func (v *validator) ValidateTextSubmission(
	ctx context.Context,
	category domain.Category,
	fields domain.TextPayload,
) (result domain.TextResult) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.WithFields(logrus.Fields{
				"category": category,
				"panic":    r,
				"stack":    string(debug.Stack()),
			}).Error("panic during text moderation, allowing submission")
			v.record(entryText, domain.OutcomeDegradedPass)
			result = domain.TextResult{OK: true, Warning: fmt.Sprintf("moderation error: %v", r)}
		}
	}()

	outcome := v.checkText(ctx, category, fields)
	v.record(entryText, outcome.Kind)

	if outcome.Kind == domain.OutcomeReject {
		return domain.TextResult{
			OK:            false,
			RejectedField: outcome.Field,
			Message:       outcome.Message,
		}
	}
	return domain.TextResult{OK: true, Warning: outcome.Warning()}
}

func (v *validator) checkText(
	ctx context.Context,
	category domain.Category,
	fields domain.TextPayload,
) domain.Outcome {
	for _, field := range fields {
		match, hit := v.profanity.Match(field.Value)
		if !hit {
			continue
		}
		v.logger.WithFields(logrus.Fields{
			"category": category,
			"field":    field.Name,
			"source":   match.Source,
			"script":   match.Script,
		}).Info("submission rejected by profanity filter")
		prometheus.LexicalHitsTotal.WithLabelValues(string(field.Name), string(match.Source)).Inc()
		return domain.Reject(
			field.Name,
			ProfanityMessage(field.Name),
			domain.Unsafe("inappropriate language in "+string(field.Name)),
		)
	}

	verdict := v.classifier.CheckTextSafety(ctx, fields.Combined())
	outcome := domain.FromVerdict(category, verdict)
	switch outcome.Kind {
	case domain.OutcomeReject:
		v.logger.WithFields(logrus.Fields{
			"category": category,
			"reason":   verdict.Reason,
		}).Info("submission rejected by classifier")
	case domain.OutcomeDegradedPass:
		v.logger.WithFields(logrus.Fields{
			"category":   category,
			"warning":    verdict.Warning,
			"error_note": verdict.ErrorNote,
		}).Debug("text moderation degraded, allowing submission")
	}
	return outcome
}

func (v *validator) ValidateImageSubmission(
	ctx context.Context,
	img domain.ImageSource,
	cleanup CleanupFunc,
) (result domain.ImageResult) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.WithFields(logrus.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("panic during image moderation, allowing submission")
			v.record(entryImage, domain.OutcomeDegradedPass)
			result = domain.ImageResult{OK: true, Warning: fmt.Sprintf("moderation error: %v", r)}
		}
	}()

	outcome := v.checkImage(ctx, img)
	v.record(entryImage, outcome.Kind)

	if outcome.Kind != domain.OutcomeReject {
		return domain.ImageResult{OK: true, Warning: outcome.Warning()}
	}

	if cleanup != nil {
		if err := cleanup(ctx); err != nil {
			v.logger.WithError(err).Error("failed to clean up rejected image")
		}
	}
	return domain.ImageResult{OK: false, Message: outcome.Message}
}

func (v *validator) checkImage(ctx context.Context, img domain.ImageSource) domain.Outcome {
	data, mimeType, err := img.Read(ctx)
	if err != nil {
		v.logger.WithError(err).Error("failed to read image, allowing submission")
		return domain.DegradedPass(fmt.Sprintf("image read failed: %v", err))
	}

	verdict := v.classifier.CheckImageSafety(ctx, data, mimeType)
	outcome := domain.FromVerdict(domain.CategoryImage, verdict)
	if outcome.Kind == domain.OutcomeReject {
		v.logger.WithFields(logrus.Fields{
			"mime_type": mimeType,
			"reason":    verdict.Reason,
		}).Info("image rejected by classifier")
	}
	return outcome
}

func (v *validator) GenerateQuickReplies(ctx context.Context, history []domain.ChatMessage) []string {
	return v.classifier.GenerateQuickReplies(ctx, history)
}

func (v *validator) GeneratePostAnalysis(ctx context.Context, title, description string) domain.PostAnalysis {
	return v.classifier.GeneratePostAnalysis(ctx, title, description)
}

func (v *validator) GeneratePostExplanation(ctx context.Context, title, description string) domain.PostExplanation {
	return v.classifier.GeneratePostExplanation(ctx, title, description)
}

func (v *validator) record(entry string, kind domain.OutcomeKind) {
	prometheus.ModerationDecisionsTotal.WithLabelValues(entry, string(kind)).Inc()
}

// ProfanityMessage is the user-facing rejection for a lexical hit in field.
func ProfanityMessage(field domain.FieldName) string {
	return fmt.Sprintf("Your %s contains inappropriate language. Please be respectful.", fieldLabel(field))
}

func fieldLabel(field domain.FieldName) string {
	if field == domain.FieldDisplayName {
		return "display name"
	}
	return strings.ToLower(string(field))
}
