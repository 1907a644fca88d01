package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MyCircle/moderation/pkg/config"
	handlers "github.com/MyCircle/moderation/pkg/handlers/http"
	"github.com/MyCircle/moderation/pkg/infra/logger"
	"github.com/MyCircle/moderation/pkg/infra/prometheus"
	"github.com/MyCircle/moderation/pkg/middleware"
	"github.com/MyCircle/moderation/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct{ name string }

func (h stubHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString(h.name)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:         8080,
			Host:         "127.0.0.1",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
}

func newTestServer() *ModerationServer {
	transport := &handlers.HandlerTransport{
		GetVersionHandler:      stubHandler{"version"},
		ModeratePostHandler:    stubHandler{"posts"},
		ModerateProfileHandler: stubHandler{"profiles"},
		ModerateImageHandler:   stubHandler{"images"},
		QuickRepliesHandler:    stubHandler{"quick-replies"},
		PostAnalysisHandler:    stubHandler{"post-analysis"},
		PostExplanationHandler: stubHandler{"post-explanation"},
	}
	mws := middleware.NewTransport(middleware.NewRequestIDMiddleware())
	return NewModerationServer(ModerationServerDI{
		Config:  testConfig(),
		Logger:  logger.NewNopLogger(),
		Routers: []router.ServerRouter{router.NewModerationRouter(mws, transport)},
	}).Build()
}

func TestModerationServer_Routes(t *testing.T) {
	s := newTestServer()

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{"GET", "/version", "version"},
		{"POST", "/api/v1/moderation/posts", "posts"},
		{"POST", "/api/v1/moderation/profiles", "profiles"},
		{"POST", "/api/v1/moderation/images", "images"},
		{"POST", "/api/v1/assist/quick-replies", "quick-replies"},
		{"POST", "/api/v1/assist/post-analysis", "post-analysis"},
		{"POST", "/api/v1/assist/post-explanation", "post-explanation"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := s.Router.Test(httptest.NewRequest(tc.method, tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.body, string(body))
		})
	}
}

func TestModerationServer_HealthAndMetrics(t *testing.T) {
	prometheus.Initialize()
	s := newTestServer()

	resp, err := s.Router.Test(httptest.NewRequest("GET", HealthPath, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = s.Router.Test(httptest.NewRequest("GET", MetricsPath, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
}

func TestModerationRouter_NilTransport(t *testing.T) {
	r := router.NewModerationRouter(nil, nil)
	assert.ErrorIs(t, r.BuildRoutes(fiber.New()), router.ErrInvalidHandlerTransport)
}
