package notification

import (
	"fmt"
	"time"

	"hostdesk/internal/shared/biztime"

	vo "hostdesk/internal/domain/notification/valueobjects"
)

// Notification is an admin-inbox audit record. The dispatcher writes one per
// reminder or lifecycle event; the admin UI reads, marks and deletes them.
type Notification struct {
	id         uint
	customerID *uint
	ntype      vo.NotificationType
	title      string
	message    string
	actionURL  *string
	read       bool
	createdAt  time.Time
}

func NewNotification(ntype vo.NotificationType, title, message string, actionURL *string, customerID *uint) (*Notification, error) {
	if !ntype.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", ntype)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	return &Notification{
		customerID: customerID,
		ntype:      ntype,
		title:      title,
		message:    message,
		actionURL:  actionURL,
		createdAt:  biztime.NowUTC(),
	}, nil
}

// ReconstructNotification rebuilds a notification from persistence.
func ReconstructNotification(id uint, ntype vo.NotificationType, title, message string, actionURL *string, customerID *uint, read bool, createdAt time.Time) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !ntype.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", ntype)
	}
	return &Notification{
		id:         id,
		customerID: customerID,
		ntype:      ntype,
		title:      title,
		message:    message,
		actionURL:  actionURL,
		read:       read,
		createdAt:  createdAt,
	}, nil
}

func (n *Notification) ID() uint                  { return n.id }
func (n *Notification) CustomerID() *uint         { return n.customerID }
func (n *Notification) Type() vo.NotificationType { return n.ntype }
func (n *Notification) Title() string             { return n.title }
func (n *Notification) Message() string           { return n.message }
func (n *Notification) ActionURL() *string        { return n.actionURL }
func (n *Notification) IsRead() bool              { return n.read }
func (n *Notification) CreatedAt() time.Time      { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkAsRead() {
	n.read = true
}
