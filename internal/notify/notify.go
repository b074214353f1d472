// Package notify delivers the short user-facing messages raised after
// catalog mutations and auth transitions.
package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Notification is one toast-style message.
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

// Notifier receives notifications.  Implementations must not block for long
// and must swallow their own delivery errors.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Notify(context.Context, Notification) {}

// Func adapts a plain function to Notifier.
type Func func(ctx context.Context, n Notification)

func (f Func) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Fanout delivers to every non-nil notifier in order.
func Fanout(ns ...Notifier) Notifier {
	out := make(multi, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

type multi []Notifier

func (m multi) Notify(ctx context.Context, n Notification) {
	for _, x := range m {
		x.Notify(ctx, n)
	}
}

// Log writes every notification to a zap logger at info level.
type Log struct{ log *zap.Logger }

func NewLog(log *zap.Logger) *Log {
	if log == nil {
		log = zap.NewNop()
	}
	return &Log{log: log}
}

func (l *Log) Notify(_ context.Context, n Notification) {
	l.log.Info("notification", zap.String("title", n.Title), zap.String("description", n.Description))
}
