package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	scheduleHTTP "pharmacy-ops/internal/schedule/delivery/http"
	"pharmacy-ops/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	rateLimitPerMin int

	// Schedule domain
	scheduleHandler scheduleHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int

	// Schedule domain
	ScheduleHandler scheduleHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		scheduleHandler: cfg.ScheduleHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleHandler == nil {
		return errors.New("schedule handler is required")
	}
	return nil
}
