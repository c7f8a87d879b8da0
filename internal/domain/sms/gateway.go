package sms

import "context"

// MaxMessageLength bounds outbound message text; longer messages are rejected
// before reaching the provider for cost and encoding reasons.
const MaxMessageLength = 500

// SendResult reports one gateway send attempt. RawResponse carries the
// provider's body verbatim for the audit log.
type SendResult struct {
	Success     bool
	RawResponse string
	ErrMessage  string
}

// Gateway is the outbound SMS port: one operation, send a text message to a
// local-format phone number.
type Gateway interface {
	Send(ctx context.Context, phone, message string) (*SendResult, error)
}
