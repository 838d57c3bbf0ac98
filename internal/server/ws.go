package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/arcanaworks/arcana-server-go/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// writeWait bounds every outbound write so one stalled client cannot hold the
// hub lock and starve broadcasts to everyone else.
const writeWait = 5 * time.Second

// subscriber is one websocket client watching a game from a seat (or as a
// spectator with viewer -1).
type subscriber struct {
	conn   *websocket.Conn
	viewer int
}

// hub fans game snapshots out to websocket subscribers. Every successful
// mutation broadcasts each subscriber its own per-seat view.
type hub struct {
	mu   sync.Mutex
	log  *zap.Logger
	subs map[string]map[*subscriber]struct{}
}

func newHub(logger *zap.Logger) *hub {
	return &hub{
		log:  logger,
		subs: make(map[string]map[*subscriber]struct{}),
	}
}

func (h *hub) register(gameID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[gameID] == nil {
		h.subs[gameID] = make(map[*subscriber]struct{})
	}
	h.subs[gameID][sub] = struct{}{}
}

func (h *hub) unregister(gameID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[gameID], sub)
	if len(h.subs[gameID]) == 0 {
		delete(h.subs, gameID)
	}
}

// broadcast pushes the current state to every subscriber of the game. A
// failed or timed-out write drops the subscriber; the read loop notices the
// closed connection and cleans up.
func (h *hub) broadcast(g *game.Game) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs[g.ID()] {
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.conn.WriteJSON(g.View(sub.viewer)); err != nil {
			h.log.Debug("websocket write failed", zap.Error(err))
			sub.conn.Close()
			delete(h.subs[g.ID()], sub)
		}
	}
}

func (h *hub) closeGame(gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs[gameID] {
		sub.conn.Close()
	}
	delete(h.subs, gameID)
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, subs := range h.subs {
		for sub := range subs {
			sub.conn.Close()
		}
		delete(h.subs, id)
	}
}

func (s *Server) handleWebsocket(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	sub := &subscriber{conn: conn, viewer: viewerParam(c)}
	s.hub.register(g.ID(), sub)
	s.log.Debug("websocket subscribed",
		zap.String("game_id", g.ID()),
		zap.Int("viewer", sub.viewer),
	)

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(g.View(sub.viewer)); err != nil {
		s.hub.unregister(g.ID(), sub)
		conn.Close()
		return
	}

	// Inbound messages are ignored; the read loop only detects disconnects.
	go func() {
		defer func() {
			s.hub.unregister(g.ID(), sub)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
