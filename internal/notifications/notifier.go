// Package notifications fans out client state changes over Redis pub/sub so
// other clients of the same viewer can follow along.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/redis/go-redis/v9"
)

// Event kinds published by the Notifier.
const (
	EventNotificationRead = "notification_read"
	EventAllRead          = "notifications_read_all"
	EventMessageSent      = "message_sent"
)

// Event is the payload published on every channel.
type Event struct {
	Kind           string `json:"kind"`
	NotificationID int    `json:"notification_id,omitempty"`
	ChatID         int    `json:"chat_id,omitempty"`
	Unread         int    `json:"unread"`
	Text           string `json:"text,omitempty"`
}

// Notifier publishes events into Redis channels. A nil client turns every
// call into a no-op.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// ViewerChannel is the channel notification events for viewerID go to.
func ViewerChannel(viewerID string) string {
	return "gamechanger:notifications:viewer:" + viewerID
}

// ChatChannel is the channel message events for a chat go to.
func ChatChannel(chatID int) string {
	return fmt.Sprintf("gamechanger:chat:%d", chatID)
}

// PublishViewer sends a notification event to a viewer's channel.
func (n *Notifier) PublishViewer(ctx context.Context, viewerID string, ev Event) error {
	if n == nil || n.rdb == nil || viewerID == "" {
		return nil
	}
	return n.publish(ctx, ViewerChannel(viewerID), ev)
}

// PublishChat sends a message event to a chat's channel.
func (n *Notifier) PublishChat(ctx context.Context, chatID int, ev Event) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	ev.ChatID = chatID
	return n.publish(ctx, ChatChannel(chatID), ev)
}

func (n *Notifier) publish(ctx context.Context, channel string, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return n.rdb.Publish(ctx, channel, string(payload)).Err()
}

// Subscribe listens on the viewer and chat patterns and calls onEvent for each
// message until ctx is done. Undecodable payloads are skipped.
func (n *Notifier) Subscribe(ctx context.Context, onEvent func(channel string, ev Event)) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, "gamechanger:notifications:viewer:*", "gamechanger:chat:*")
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("subscribe: %w", err)
	}
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					continue
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("PANIC in notifications subscriber: %v\n%s", r, debug.Stack())
						}
					}()
					onEvent(msg.Channel, ev)
				}()
			}
		}
	}()

	return nil
}
