package ports

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
)

// Message is the payload handed to the external messaging gateway.
type Message struct {
	RecipientID   string
	RecipientName string
	Contact       string
	Channels      []notification.Channel
	Body          string
	Urgency       notification.Urgency
}

// MessageGateway abstracts the external SMS/email delivery service. Send
// blocks until the gateway accepts or refuses the message; callers bound it
// with a context deadline.
type MessageGateway interface {
	Send(ctx context.Context, message Message) error
}
