package v1

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhu-travel/backoffice-api/internal/api/middleware"
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

func TestFeedHandler_BroadcastsEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := NewFeedHandler()
	go feed.Run(ctx)

	r := gin.New()
	r.GET("/reservations/feed", middleware.NewAuthenticator(testSigningKey).VerifyJWT(), feed.HandleFeed)
	srv := httptest.NewServer(r)
	defer srv.Close()

	token := bearer(t, adminIdentity())
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/reservations/feed?token=" + token

	conns := make([]*websocket.Conn, 0, 2)
	for i := 0; i < 2; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		defer conn.Close()
		conns = append(conns, conn)
	}

	require.Eventually(t, func() bool {
		return feed.subscriberCount() == 2
	}, 2*time.Second, 10*time.Millisecond)

	event := domain.ReservationEvent{
		Type:            domain.ReservationCreated,
		ReservationID:   uuid.New(),
		ReservationCode: "RES-2026-0003",
		Status:          domain.ReservationConfirmed,
		OccurredAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	feed.Publish(event)

	for _, conn := range conns {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, message, err := conn.ReadMessage()
		require.NoError(t, err)

		var got domain.ReservationEvent
		require.NoError(t, json.Unmarshal(message, &got))
		assert.Equal(t, event.Type, got.Type)
		assert.Equal(t, event.ReservationID, got.ReservationID)
		assert.Equal(t, event.ReservationCode, got.ReservationCode)
		assert.True(t, event.OccurredAt.Equal(got.OccurredAt))
	}

	require.NoError(t, conns[0].Close())
	require.Eventually(t, func() bool {
		return feed.subscriberCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFeedHandler_RequiresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	feed := NewFeedHandler()
	r := gin.New()
	r.GET("/reservations/feed", middleware.NewAuthenticator(testSigningKey).VerifyJWT(), feed.HandleFeed)
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/reservations/feed", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestFeedHandler_PublishWithoutSubscribers(t *testing.T) {
	feed := NewFeedHandler()

	for i := 0; i < feedBuffer*2; i++ {
		feed.Publish(domain.ReservationEvent{Type: domain.ReservationDeleted, ReservationID: uuid.New()})
	}

	assert.Equal(t, 0, feed.subscriberCount())
}
