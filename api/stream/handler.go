// Package stream replays the current day plan over a WebSocket, one record
// per message.
package stream

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kilianp07/hybridpark/core/logger"
	"github.com/kilianp07/hybridpark/core/simulator"
)

// DefaultInterval is the pause between two replayed records.
const DefaultInterval = time.Second

const writeWait = 5 * time.Second

// Handler upgrades GET /api/dispatch/stream and replays the plan.
type Handler struct {
	src      simulator.PlanSource
	interval time.Duration
	log      logger.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a replay handler. allowed lists the accepted origins;
// an empty list or "*" accepts any origin.
func NewHandler(src simulator.PlanSource, interval time.Duration, allowed []string, log logger.Logger) *Handler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	h := &Handler{src: src, interval: interval, log: log}
	h.upgrader = websocket.Upgrader{CheckOrigin: originChecker(allowed)}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	plan := h.src.Plan()
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for i, rec := range plan.Records() {
		if i > 0 {
			select {
			case <-r.Context().Done():
				return
			case <-ticker.C:
			}
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(rec); err != nil {
			h.log.Warnf("stream plan %s hour %d: %v", plan.ID, rec.Hour, err)
			return
		}
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "plan complete")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	h.log.Debugf("streamed plan %s", plan.ID)
}

func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
