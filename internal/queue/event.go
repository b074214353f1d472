// Package queue defines message payloads exchanged over the message broker.
package queue

// DefaultNotificationQueue is the durable queue notifications are published to
// when no other name is configured.
const DefaultNotificationQueue = "catalog.notifications"

// NotificationEvent is published after every successful catalog mutation or
// auth transition.  It carries the same short title/description pair that
// is shown to the user, plus the time it was raised (RFC3339, UTC).
type NotificationEvent struct {
    Title       string `json:"title"`
    Description string `json:"description"`
    RaisedAt    string `json:"raised_at"`
}
