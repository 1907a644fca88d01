package http

import (
	"errors"

	"github.com/MyCircle/moderation/pkg/common"
	"github.com/MyCircle/moderation/pkg/domain/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// writeModerationResult maps a policy rejection to 422 and anything else to
// 200. Degraded passes look like ordinary passes to the client.
func writeModerationResult(c *fiber.Ctx, err error) error {
	var violation *moderation.ViolationError
	if errors.As(err, &violation) {
		body := fiber.Map{
			"ok":      false,
			"message": violation.Message,
		}
		if violation.Field != "" {
			body["rejected_field"] = violation.Field
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

func logWarning(logger *logrus.Logger, c *fiber.Ctx, entry, warning string) {
	if warning == "" {
		return
	}
	logger.WithFields(logrus.Fields{
		"request_id": common.RequestID(c.UserContext()),
		"entry":      entry,
		"warning":    warning,
	}).Warn("moderation degraded, submission allowed")
}
