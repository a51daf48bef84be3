package notifications

import "context"

// Notification is the payload handed to the outbound sink.
type Notification struct {
	// Actor is the display handle of the user who triggered the change
	Actor string `json:"actor"`
	// Title names the action ("New post", "Edit post", "New comment")
	Title string `json:"title"`
	// Body is the detail text: post body, comment body, or rendered diff
	Body string `json:"body"`
	// Link is the permalink of the affected post
	Link string `json:"link"`
}

// Sink delivers a notification to the team's chat channel.
// Delivery is fire-and-forget: the dispatcher logs failures and never
// propagates them.
type Sink interface {
	Send(ctx context.Context, n Notification) error
}
