package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arcanaworks/arcana-server-go/internal/bot"
	"github.com/arcanaworks/arcana-server-go/internal/game"
	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
)

type createGameRequest struct {
	Players int   `json:"players"`
	Seed    int64 `json:"seed"`
	// Bots fills the highest-numbered seats with server-driven agents.
	Bots int `json:"bots"`
}

func (s *Server) handleCreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = s.cfg.Game.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := s.manager.CreateGame(req.Players, seed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.spawnBots(g, req.Players, req.Bots)
	s.log.Info("game created via api",
		zap.String("game_id", g.ID()),
		zap.Int("players", req.Players),
		zap.Int("bots", req.Bots),
	)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "game_id": g.ID(), "view": g.View(-1)})
}

// spawnBots starts agents for the requested number of seats, counted from
// the highest seat down. Bot support has to be enabled in the config.
func (s *Server) spawnBots(g *game.Game, players, bots int) {
	if !s.cfg.Bots.Enabled || bots <= 0 {
		return
	}
	if bots > players {
		bots = players
	}
	for seat := players - bots; seat < players; seat++ {
		agent := bot.New(g, seat, s.cfg.Bots.MoveDelay, s.log)
		go agent.Run(s.botCtx)
	}
}

func (s *Server) handleListGames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"games": s.manager.GameIDs()})
}

func (s *Server) handleGetGame(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	c.JSON(http.StatusOK, g.View(viewerParam(c)))
}

func (s *Server) handleDeleteGame(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	s.hub.closeGame(g.ID())
	s.manager.Remove(g.ID())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// lookup resolves the :id path param, answering 404 itself on a miss.
func (s *Server) lookup(c *gin.Context) (*game.Game, bool) {
	g, found := s.manager.Game(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "reason": "game not found"})
	}
	return g, found
}

// viewerParam parses the player query param, defaulting to a spectator view.
func viewerParam(c *gin.Context) int {
	viewer, err := strconv.Atoi(c.DefaultQuery("player", "-1"))
	if err != nil {
		return -1
	}
	return viewer
}

// respond translates an engine result into an HTTP reply and, on success,
// pushes the new state to every websocket subscriber of the game.
func (s *Server) respond(c *gin.Context, g *game.Game, playerID int, res game.Result) {
	if !res.OK {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": res.Reason})
		return
	}
	s.hub.broadcast(g)
	c.JSON(http.StatusOK, gin.H{"ok": true, "view": g.View(playerID)})
}

func parseEssences(m map[string]int) map[essence.Type]int {
	if m == nil {
		return nil
	}
	out := make(map[essence.Type]int, len(m))
	for k, v := range m {
		out[essence.Type(k)] = v
	}
	return out
}

type cardActionRequest struct {
	Player int    `json:"player"`
	Card   string `json:"card"`
}

func (s *Server) handlePickCard(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req cardActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.PickCard(req.Player, req.Card))
}

func (s *Server) handleSelectMage(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req cardActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.SelectMage(req.Player, req.Card))
}

func (s *Server) handleTakeMagicItem(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req cardActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.TakeMagicItem(req.Player, req.Card))
}
