package sms

import (
	"fmt"
	"time"

	"hostdesk/internal/shared/biztime"
)

// Status is the delivery outcome recorded in the audit log.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusPending
}

// Log is one audit-log row per gateway send attempt.
type Log struct {
	id       uint
	phone    string
	message  string
	status   Status
	response *string
	sentAt   time.Time
}

func NewLog(phone, message string, status Status, response *string) (*Log, error) {
	if phone == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid sms status: %s", status)
	}
	return &Log{
		phone:    phone,
		message:  message,
		status:   status,
		response: response,
		sentAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructLog(id uint, phone, message string, status Status, response *string, sentAt time.Time) (*Log, error) {
	if id == 0 {
		return nil, fmt.Errorf("sms log ID cannot be zero")
	}
	return &Log{
		id:       id,
		phone:    phone,
		message:  message,
		status:   status,
		response: response,
		sentAt:   sentAt,
	}, nil
}

func (l *Log) ID() uint          { return l.id }
func (l *Log) Phone() string     { return l.phone }
func (l *Log) Message() string   { return l.message }
func (l *Log) Status() Status    { return l.status }
func (l *Log) Response() *string { return l.response }
func (l *Log) SentAt() time.Time { return l.sentAt }

func (l *Log) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("sms log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("sms log ID cannot be zero")
	}
	l.id = id
	return nil
}
