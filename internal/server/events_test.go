package server

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"gamechanger/internal/config"
	"gamechanger/internal/notifications"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, sub *miniredis.Subscriber) notifications.Event {
	t.Helper()
	select {
	case msg := <-sub.Messages():
		var ev notifications.Event
		require.NoError(t, json.Unmarshal([]byte(msg.Message), &ev))
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
		return notifications.Event{}
	}
}

func TestEvents_PublishedOverRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	_, app := newTestServer(t, func(c *config.Config) { c.RedisURL = mr.Addr() })
	signInDemo(t, app)

	viewerSub := mr.NewSubscriber()
	viewerSub.Subscribe(notifications.ViewerChannel("1"))
	t.Cleanup(func() { viewerSub.Close() })
	chatSub := mr.NewSubscriber()
	chatSub.Subscribe(notifications.ChatChannel(1))
	t.Cleanup(func() { chatSub.Close() })

	status, _ := doJSON(t, app, http.MethodPost, "/api/notifications/1/read", nil)
	require.Equal(t, http.StatusOK, status)
	ev := nextEvent(t, viewerSub)
	assert.Equal(t, notifications.EventNotificationRead, ev.Kind)
	assert.Equal(t, 1, ev.NotificationID)
	assert.Equal(t, 1, ev.Unread)

	status, _ = doJSON(t, app, http.MethodPost, "/api/notifications/read-all", nil)
	require.Equal(t, http.StatusOK, status)
	ev = nextEvent(t, viewerSub)
	assert.Equal(t, notifications.EventAllRead, ev.Kind)
	assert.Equal(t, 0, ev.Unread)

	status, _ = doJSON(t, app, http.MethodPost, "/api/messages/1", map[string]string{"message": "see you at trials"})
	require.Equal(t, http.StatusOK, status)
	ev = nextEvent(t, chatSub)
	assert.Equal(t, notifications.EventMessageSent, ev.Kind)
	assert.Equal(t, 1, ev.ChatID)
	assert.Equal(t, "see you at trials", ev.Text)
}
