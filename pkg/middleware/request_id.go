package middleware

import (
	"github.com/MyCircle/moderation/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type requestIDMiddleware struct{}

func NewRequestIDMiddleware() Middleware {
	return &requestIDMiddleware{}
}

// Middleware keeps a caller-supplied request id when it parses as a UUID and
// generates one otherwise.
func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(common.RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(common.RequestIDHeader, id)
		c.Locals(string(common.RequestIDContextKey), id)
		c.SetUserContext(common.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}
