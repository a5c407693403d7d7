package httpapi

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"healthwatch/internal/domain"
)

const streamWriteTimeout = 5 * time.Second

var streamUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(u.Host), strings.TrimSpace(r.Host))
	},
}

// hub tracks websocket subscribers and pushes each published cycle to them.
type hub struct {
	logger *zap.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newHub(l *zap.Logger) *hub {
	return &hub{logger: l, conns: make(map[*websocket.Conn]struct{})}
}

func (h *hub) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := streamUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	// Client messages are discarded; the read loop only notices the peer
	// going away.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// broadcast is called from the scheduler loop, one cycle at a time, so each
// connection sees a single writer.
func (h *hub) broadcast(cycle domain.Cycle) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := conn.WriteJSON(cycle); err != nil {
			h.logger.Warn("stream_write_error", zap.Error(err))
			h.drop(conn)
		}
	}
}
