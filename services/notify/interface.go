package notify

import "context"

// Message is a single outbound email with both plain-text and HTML parts.
type Message struct {
	To      string
	Bcc     string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers messages over the configured transport. Simulated reports
// whether the message was actually sent or only logged; real-transport
// failures are returned to the caller, which maps them to a dispatch
// failure. One attempt per message, no retry or queuing.
type Mailer interface {
	Send(ctx context.Context, msg Message) (simulated bool, err error)
}
