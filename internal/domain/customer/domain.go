package customer

import (
	"fmt"
	"time"

	"hostdesk/internal/shared/biztime"
)

// Domain is a customer-owned site address. The WordPress fields are recorded
// for the monitoring integration; nothing in the reminder core reads them.
type Domain struct {
	id                 uint
	customerID         uint
	url                string
	wpAdminURL         *string
	wpSecretKey        *string
	wpUpdateAvailable  bool
	pluginUpdatesCount int
	themeUpdatesCount  int
	lastChecked        *time.Time
	createdAt          time.Time
}

func NewDomain(customerID uint, url string) (*Domain, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if url == "" {
		return nil, fmt.Errorf("domain URL is required")
	}
	return &Domain{
		customerID: customerID,
		url:        url,
		createdAt:  biztime.NowUTC(),
	}, nil
}

// DomainReconstructParams carries persisted state back into the entity.
type DomainReconstructParams struct {
	ID                 uint
	CustomerID         uint
	URL                string
	WPAdminURL         *string
	WPSecretKey        *string
	WPUpdateAvailable  bool
	PluginUpdatesCount int
	ThemeUpdatesCount  int
	LastChecked        *time.Time
	CreatedAt          time.Time
}

func ReconstructDomain(p DomainReconstructParams) (*Domain, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("domain ID cannot be zero")
	}
	if p.CustomerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	return &Domain{
		id:                 p.ID,
		customerID:         p.CustomerID,
		url:                p.URL,
		wpAdminURL:         p.WPAdminURL,
		wpSecretKey:        p.WPSecretKey,
		wpUpdateAvailable:  p.WPUpdateAvailable,
		pluginUpdatesCount: p.PluginUpdatesCount,
		themeUpdatesCount:  p.ThemeUpdatesCount,
		lastChecked:        p.LastChecked,
		createdAt:          p.CreatedAt,
	}, nil
}

func (d *Domain) ID() uint                { return d.id }
func (d *Domain) CustomerID() uint        { return d.customerID }
func (d *Domain) URL() string             { return d.url }
func (d *Domain) WPAdminURL() *string     { return d.wpAdminURL }
func (d *Domain) WPSecretKey() *string    { return d.wpSecretKey }
func (d *Domain) WPUpdateAvailable() bool { return d.wpUpdateAvailable }
func (d *Domain) PluginUpdatesCount() int { return d.pluginUpdatesCount }
func (d *Domain) ThemeUpdatesCount() int  { return d.themeUpdatesCount }
func (d *Domain) LastChecked() *time.Time { return d.lastChecked }
func (d *Domain) CreatedAt() time.Time    { return d.createdAt }

func (d *Domain) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("domain ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("domain ID cannot be zero")
	}
	d.id = id
	return nil
}

// ConfigureWordPress attaches the monitoring integration credentials.
func (d *Domain) ConfigureWordPress(adminURL, secretKey string) {
	d.wpAdminURL = &adminURL
	d.wpSecretKey = &secretKey
}
