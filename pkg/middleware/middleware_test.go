package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/MyCircle/moderation/pkg/common"
	"github.com/MyCircle/moderation/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(mws ...middleware.Middleware) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewTransport(mws...).GetMiddlewares()...)
	return app
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	app := newApp(middleware.NewRequestIDMiddleware())
	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen = common.RequestID(c.UserContext())
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get(common.RequestIDHeader)
	_, parseErr := uuid.Parse(header)
	assert.NoError(t, parseErr)
	assert.Equal(t, header, seen)
}

func TestRequestIDMiddleware_KeepsValidID(t *testing.T) {
	app := newApp(middleware.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	id := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(common.RequestIDHeader, id)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, id, resp.Header.Get(common.RequestIDHeader))

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(common.RequestIDHeader, "not-a-uuid")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(common.RequestIDHeader))
}

func TestPanicRecoverMiddleware(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := newApp(middleware.NewPanicRecoverMiddleware(logger))
	app.Get("/", func(c *fiber.Ctx) error { panic("handler bug") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "HTTP server panic recovered", hook.LastEntry().Message)
}

func TestCORSGlobalMiddleware_Preflight(t *testing.T) {
	app := newApp(middleware.NewCORSGlobalMiddleware(
		[]string{"https://app.mycircle.example"},
		[]string{"GET", "POST"},
		false, nil, "600",
	))
	app.Post("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "https://app.mycircle.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://app.mycircle.example", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "600", resp.Header.Get("Access-Control-Max-Age"))
}

func TestCORSGlobalMiddleware_UnknownOrigin(t *testing.T) {
	app := newApp(middleware.NewCORSGlobalMiddleware(
		[]string{"https://app.mycircle.example"}, []string{"POST"}, false, nil, ""))
	app.Post("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMetricsMiddleware_PassesThrough(t *testing.T) {
	app := newApp(middleware.NewMetricsMiddleware())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusAccepted) })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
}
