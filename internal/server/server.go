package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arcanaworks/arcana-server-go/internal/config"
	"github.com/arcanaworks/arcana-server-go/internal/game"
)

// Server is the HTTP and websocket front end over the game manager.
type Server struct {
	cfg     *config.Config
	log     *zap.Logger
	manager *game.Manager
	hub     *hub
	engine  *gin.Engine

	// botCtx scopes the lifetime of bot agents to the server.
	botCtx    context.Context
	botCancel context.CancelFunc
}

// New builds the server and wires all routes.
func New(cfg *config.Config, logger *zap.Logger, manager *game.Manager) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware(cfg.Server.AllowedOrigins))

	botCtx, botCancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:       cfg,
		log:       logger,
		manager:   manager,
		hub:       newHub(logger),
		engine:    engine,
		botCtx:    botCtx,
		botCancel: botCancel,
	}
	s.routes()
	return s
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cors.New(cc)
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/health", s.handleHealth)

	games := api.Group("/games")
	games.POST("", s.handleCreateGame)
	games.GET("", s.handleListGames)
	games.GET("/:id", s.handleGetGame)
	games.DELETE("/:id", s.handleDeleteGame)
	games.GET("/:id/ws", s.handleWebsocket)

	games.POST("/:id/draft/pick", s.handlePickCard)
	games.POST("/:id/draft/mage", s.handleSelectMage)
	games.POST("/:id/draft/magic-item", s.handleTakeMagicItem)

	games.POST("/:id/income/collection", s.handleCollectionChoice)
	games.POST("/:id/income/choice", s.handleIncomeChoice)
	games.POST("/:id/income/auto-skip", s.handleAutoSkipPlaces)
	games.POST("/:id/income/wait", s.handleWaitForEarlier)
	games.POST("/:id/income/finalize", s.handleFinalizeIncome)

	games.POST("/:id/actions/play", s.handlePlayCard)
	games.POST("/:id/actions/place", s.handleBuyPlace)
	games.POST("/:id/actions/monument", s.handleBuyMonument)
	games.POST("/:id/actions/discard", s.handleDiscard)
	games.POST("/:id/actions/pass", s.handlePass)
	games.POST("/:id/actions/ability", s.handleUseAbility)
	games.GET("/:id/actions/abilities", s.handleListAbilities)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	s.botCancel()
	s.hub.closeAll()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
