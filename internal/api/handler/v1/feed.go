package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muhu-travel/backoffice-api/internal/api/handler/v1/response"
	"github.com/muhu-travel/backoffice-api/internal/api/middleware"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

const (
	feedWriteWait  = 10 * time.Second
	feedPongWait   = 60 * time.Second
	feedPingPeriod = (feedPongWait * 9) / 10
	feedBuffer     = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origins are enforced by the CORS middleware and the token
	},
}

type feedSubscriber struct {
	conn     *websocket.Conn
	send     chan []byte
	identity domain.Identity
}

// FeedHandler pushes reservation events to every connected staff member.
type FeedHandler struct {
	subscribers      map[*feedSubscriber]struct{}
	subscribersMutex sync.RWMutex
	broadcast        chan []byte
	register         chan *feedSubscriber
	unregister       chan *feedSubscriber
	done             chan struct{}
}

func NewFeedHandler() *FeedHandler {
	return &FeedHandler{
		subscribers: make(map[*feedSubscriber]struct{}),
		broadcast:   make(chan []byte, feedBuffer),
		register:    make(chan *feedSubscriber),
		unregister:  make(chan *feedSubscriber),
		done:        make(chan struct{}),
	}
}

// Run owns the subscriber set until ctx is cancelled. It must be called once.
func (h *FeedHandler) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.subscribersMutex.Lock()
			for s := range h.subscribers {
				delete(h.subscribers, s)
				close(s.send)
			}
			h.subscribersMutex.Unlock()
			return
		case s := <-h.register:
			h.subscribersMutex.Lock()
			h.subscribers[s] = struct{}{}
			h.subscribersMutex.Unlock()
		case s := <-h.unregister:
			h.subscribersMutex.Lock()
			if _, ok := h.subscribers[s]; ok {
				delete(h.subscribers, s)
				close(s.send)
			}
			h.subscribersMutex.Unlock()
		case message := <-h.broadcast:
			h.subscribersMutex.Lock()
			for s := range h.subscribers {
				select {
				case s.send <- message:
				default:
					// too slow, drop it
					delete(h.subscribers, s)
					close(s.send)
				}
			}
			h.subscribersMutex.Unlock()
		}
	}
}

// Publish never blocks the request that triggered the event. Events are
// dropped when the hub is saturated.
func (h *FeedHandler) Publish(event domain.ReservationEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to encode reservation event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- message:
	default:
		zap.L().Warn("reservation feed saturated, event dropped",
			zap.String("type", string(event.Type)),
			zap.String("reservation_id", event.ReservationID.String()))
	}
}

func (h *FeedHandler) subscriberCount() int {
	h.subscribersMutex.RLock()
	defer h.subscribersMutex.RUnlock()

	return len(h.subscribers)
}

// HandleFeed godoc
// @Summary      Reservation feed
// @Description  Upgrades to a websocket that receives reservation.created, reservation.updated and reservation.deleted events.
// @Description  Browsers may pass the token in the token query parameter.
// @Tags         reservations
// @Produce      json
// @Param        token  query     string  false  "JWT when the Authorization header cannot be set"
// @Success      101    {string}  string  "Switching Protocols to WebSocket"
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Router       /reservations/feed [get]
// @Security     BearerAuth
func (h *FeedHandler) HandleFeed(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthenticated(errNoIdentity))
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	s := &feedSubscriber{
		conn:     conn,
		send:     make(chan []byte, feedBuffer),
		identity: identity,
	}
	select {
	case h.register <- s:
	case <-h.done:
		conn.Close()
		return
	}

	zap.L().Debug("feed subscriber connected",
		zap.String("user_id", identity.UserID.String()),
		zap.String("role", string(identity.Role)))

	go s.writePump()
	go s.readPump(h)
}

func (s *feedSubscriber) writePump() {
	ticker := time.NewTicker(feedPingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client messages and unregisters the subscriber once the connection is gone.
func (s *feedSubscriber) readPump(h *FeedHandler) {
	defer func() {
		select {
		case h.unregister <- s:
		case <-h.done:
		}
		s.conn.Close()
	}()

	_ = s.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Warn("feed connection closed", zap.Error(err))
			}
			return
		}
	}
}
