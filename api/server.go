package api

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/ugparu/h264profile/utils/logger"
)

var modeOnce sync.Once

// NewRouter returns the gin engine serving the negotiation endpoints.
func NewRouter(cfg Config) *gin.Engine {
	modeOnce.Do(func() { gin.SetMode(gin.ReleaseMode) })
	router := gin.New()
	router.Use(
		func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusOK)
				return
			}
			c.Next()
		})
	router.Use(gin.Recovery())
	if cfg.Pprof {
		pprof.Register(router)
	}

	router.GET("/profile-level-id/:id", getProfileLevelID)
	router.POST("/profile-level-id", postProfileLevelID)
	router.POST("/answer", postAnswer)
	router.GET("/supported-level", getSupportedLevel)

	return router
}

// Server serves the negotiation endpoints over HTTP.
type Server struct {
	server    *http.Server
	closeOnce sync.Once
}

// NewServer creates a server listening on cfg.Listen.
func NewServer(cfg Config) *Server {
	s := &Server{
		server: &http.Server{
			Addr:    cfg.Listen,
			Handler: NewRouter(cfg),
		},
	}
	logger.Debug(s, "Initialized and set up")
	return s
}

// Serve blocks until the server fails or is closed.
func (s *Server) Serve() error {
	logger.Infof(s, "Listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close stops the server.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		logger.Warning(s, "Stopping and closing")
		s.server.Close()
	})
}

func (s *Server) String() string {
	return "API"
}
