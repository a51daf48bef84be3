package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"teamlog/internal/core/users"
)

// dispatchTimeout bounds one delivery attempt end to end, including
// the actor lookup.
const dispatchTimeout = 15 * time.Second

// Dispatcher assembles notification payloads and hands them to the
// sink on a separate goroutine. Deliveries run outside the triggering
// request: a sink failure is logged and dropped, never surfaced to the
// caller, and never rolls back the content write that produced it.
type Dispatcher struct {
	sink   Sink
	users  users.Repository
	logger *slog.Logger
	domain string
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher building permalinks on domain.
// A nil sink disables outbound delivery.
func NewDispatcher(sink Sink, userRepo users.Repository, domain string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sink:   sink,
		users:  userRepo,
		logger: logger,
		domain: domain,
	}
}

// NotifyPost implements posts.Notifier. It returns immediately; the
// delivery runs in the background with its own bounded context.
func (d *Dispatcher) NotifyPost(actorID int64, title, detail string, postID int64, kindPath string) {
	if d.sink == nil {
		return
	}

	deliveryID := uuid.NewString()
	link := fmt.Sprintf("%s/%s/show/%d", d.domain, kindPath, postID)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		n := Notification{
			Actor: d.actorHandle(ctx, actorID),
			Title: title,
			Body:  detail,
			Link:  link,
		}

		if err := d.sink.Send(ctx, n); err != nil {
			d.logger.Warn("notification delivery failed",
				"delivery_id", deliveryID,
				"actor_id", actorID,
				"post_id", postID,
				"title", title,
				"error", err)
			return
		}

		d.logger.Debug("notification delivered",
			"delivery_id", deliveryID,
			"post_id", postID,
			"title", title)
	}()
}

// Wait blocks until all in-flight deliveries finish. Used on shutdown
// and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// actorHandle resolves the actor's slack handle, falling back to the
// display name and then the raw id. A missing user never blocks a
// delivery.
func (d *Dispatcher) actorHandle(ctx context.Context, actorID int64) string {
	user, err := d.users.Get(ctx, actorID)
	if err != nil {
		d.logger.Warn("failed to resolve notification actor", "actor_id", actorID, "error", err)
		return fmt.Sprintf("user %d", actorID)
	}
	if user.SlackHandle != "" {
		return "@" + user.SlackHandle
	}
	return user.Name
}
