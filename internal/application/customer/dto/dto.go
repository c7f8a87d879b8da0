package dto

import (
	"time"

	subdto "hostdesk/internal/application/subscription/dto"
	"hostdesk/internal/domain/customer"
	"hostdesk/internal/domain/subscription"
)

type CustomerDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DomainDTO struct {
	ID                 uint       `json:"id"`
	CustomerID         uint       `json:"customer_id"`
	URL                string     `json:"url"`
	WPAdminURL         *string    `json:"wp_admin_url,omitempty"`
	WPUpdateAvailable  bool       `json:"wp_update_available"`
	PluginUpdatesCount int        `json:"plugin_updates_count"`
	ThemeUpdatesCount  int        `json:"theme_updates_count"`
	LastChecked        *time.Time `json:"last_checked,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// CustomerDetailDTO is the list/detail shape: the customer with their domains
// and most recent subscription.
type CustomerDetailDTO struct {
	CustomerDTO
	Domains            []*DomainDTO            `json:"domains"`
	LatestSubscription *subdto.SubscriptionDTO `json:"latest_subscription,omitempty"`
}

type DashboardStatsDTO struct {
	TotalCustomers      int64   `json:"total_customers"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
	ExpiringThisMonth   int64   `json:"expiring_this_month"`
	MonthlyCostPerUser  float64 `json:"monthly_cost_per_user"`
}

func ToCustomerDTO(c *customer.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		ID:        c.ID(),
		Username:  c.Username(),
		Company:   string(c.Company()),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToDomainDTO(d *customer.Domain) *DomainDTO {
	if d == nil {
		return nil
	}
	return &DomainDTO{
		ID:                 d.ID(),
		CustomerID:         d.CustomerID(),
		URL:                d.URL(),
		WPAdminURL:         d.WPAdminURL(),
		WPUpdateAvailable:  d.WPUpdateAvailable(),
		PluginUpdatesCount: d.PluginUpdatesCount(),
		ThemeUpdatesCount:  d.ThemeUpdatesCount(),
		LastChecked:        d.LastChecked(),
		CreatedAt:          d.CreatedAt(),
	}
}

func ToCustomerDetailDTO(c *customer.Customer, domains []*customer.Domain, latest *subscription.Subscription) *CustomerDetailDTO {
	if c == nil {
		return nil
	}
	detail := &CustomerDetailDTO{
		CustomerDTO: *ToCustomerDTO(c),
		Domains:     ToDomainDTOList(domains),
	}
	if latest != nil {
		detail.LatestSubscription = subdto.ToSubscriptionDTO(latest)
	}
	return detail
}

func ToDomainDTOList(domains []*customer.Domain) []*DomainDTO {
	dtos := make([]*DomainDTO, 0, len(domains))
	for _, d := range domains {
		if d != nil {
			dtos = append(dtos, ToDomainDTO(d))
		}
	}
	return dtos
}
