package sms

import "context"

// LogRepository defines persistence for the SMS audit log.
type LogRepository interface {
	Create(ctx context.Context, l *Log) error
	List(ctx context.Context, limit, offset int) ([]*Log, int64, error)
}
