package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"insurance-renewal-assistant/config"
	paymentRepo "insurance-renewal-assistant/internal/payment/repository"
	"insurance-renewal-assistant/pkg/llmprovider"
	"insurance-renewal-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	config      *config.Config

	// Chat domain
	llm *llmprovider.Manager

	// Payment domain. The repository is built in main so the backend
	// switch (memory vs sqlite) happens in one place.
	paymentRepo paymentRepo.Repository
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	LLM         *llmprovider.Manager
	PaymentRepo paymentRepo.Repository
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.AppConfig,
		llm:         cfg.LLM,
		paymentRepo: cfg.PaymentRepo,
	}

	if err := srv.validate(); err != nil {
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
	if srv.config == nil {
		return errors.New("app config is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	if srv.paymentRepo == nil {
		return errors.New("payment repository is required")
	}
	return nil
}
