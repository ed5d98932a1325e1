package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type received struct {
	channel string
	ev      Event
}

func setupNotifier(t *testing.T) (*Notifier, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewNotifier(rdb), mr
}

func TestNotifier_PublishAndSubscribe(t *testing.T) {
	n, _ := setupNotifier(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan received, 4)
	require.NoError(t, n.Subscribe(ctx, func(channel string, ev Event) {
		got <- received{channel, ev}
	}))

	require.NoError(t, n.PublishViewer(ctx, "1", Event{Kind: EventNotificationRead, NotificationID: 2, Unread: 1}))
	require.NoError(t, n.PublishChat(ctx, 3, Event{Kind: EventMessageSent, Text: "hi"}))

	want := []received{
		{ViewerChannel("1"), Event{Kind: EventNotificationRead, NotificationID: 2, Unread: 1}},
		{ChatChannel(3), Event{Kind: EventMessageSent, ChatID: 3, Text: "hi"}},
	}
	for _, w := range want {
		select {
		case r := <-got:
			assert.Equal(t, w, r)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s", w.channel)
		}
	}
}

func TestNotifier_PublishWritesJSON(t *testing.T) {
	n, mr := setupNotifier(t)
	ctx := context.Background()

	sub := mr.NewSubscriber()
	sub.Subscribe(ViewerChannel("1"))
	t.Cleanup(func() { sub.Close() })

	require.NoError(t, n.PublishViewer(ctx, "1", Event{Kind: EventAllRead}))

	select {
	case msg := <-sub.Messages():
		assert.JSONEq(t, `{"kind":"notifications_read_all","unread":0}`, msg.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("no message published")
	}
}

func TestNotifier_NoClient(t *testing.T) {
	ctx := context.Background()
	for _, n := range []*Notifier{nil, NewNotifier(nil)} {
		assert.NoError(t, n.PublishViewer(ctx, "1", Event{Kind: EventAllRead}))
		assert.NoError(t, n.PublishChat(ctx, 1, Event{Kind: EventMessageSent}))
		assert.NoError(t, n.Subscribe(ctx, func(string, Event) {}))
	}
}

func TestNotifier_AnonymousViewerSkipped(t *testing.T) {
	n, mr := setupNotifier(t)
	sub := mr.NewSubscriber()
	sub.Subscribe(ViewerChannel(""))
	t.Cleanup(func() { sub.Close() })

	require.NoError(t, n.PublishViewer(context.Background(), "", Event{Kind: EventAllRead}))

	select {
	case <-sub.Messages():
		t.Fatal("anonymous viewers have no channel")
	case <-time.After(100 * time.Millisecond):
	}
}
