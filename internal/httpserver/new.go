package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	appConfig "voltassist/config"
	"voltassist/pkg/gemini"
	"voltassist/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared clients
	postgresDB  *sql.DB
	redisClient *goredis.Client
	gemini      *gemini.Client

	// Domain tuning
	appCfg *appConfig.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB  *sql.DB
	RedisClient *goredis.Client
	Gemini      *gemini.Client

	AppConfig *appConfig.Config
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
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		gemini:      cfg.Gemini,
		appCfg:      cfg.AppConfig,
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
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.redisClient == nil {
		return errors.New("redis client is required")
	}
	if srv.appCfg == nil {
		return errors.New("app config is required")
	}
	return nil
}
