package server

import (
	"fmt"
	"time"

	"github.com/MyCircle/moderation/pkg/config"
	"github.com/MyCircle/moderation/pkg/server/router"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type (
	ModerationServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	ModerationServer struct {
		*BaseServer
		routers []router.ServerRouter
		built   bool
	}
)

func NewModerationServer(di ModerationServerDI) *ModerationServer {
	return &ModerationServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
		routers:    di.Routers,
	}
}

// Build registers every route. Run calls it, tests call it directly to get
// a routed app without listening.
func (s *ModerationServer) Build() *ModerationServer {
	if s.built {
		return s
	}
	s.built = true
	s.setupHealthCheck()
	s.setupMetricsEndpoint()
	s.WithRouters(s.routers...)
	return s
}

func (s *ModerationServer) Run() error {
	s.Build()
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting moderation server")
	return s.Router.Listen(addr)
}

func (s *ModerationServer) Shutdown() error {
	return s.Router.ShutdownWithTimeout(shutdownTimeout)
}
