package customer

import (
	"fmt"
	"time"

	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/utils"
)

// Company is the reseller's customer grouping tag.
type Company string

const (
	CompanyAjad   Company = "Ajad"
	CompanySoft   Company = "Soft"
	CompanySpex   Company = "Spex"
	CompanyAlmas  Company = "Almas"
	CompanyOthers Company = "Others"
)

func (c Company) IsValid() bool {
	switch c {
	case CompanyAjad, CompanySoft, CompanySpex, CompanyAlmas, CompanyOthers:
		return true
	}
	return false
}

// Customer is a hosting customer. It exclusively owns its domains and,
// through them, their subscription pay periods.
type Customer struct {
	id        uint
	username  string
	company   Company
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(username string, company Company, phone string) (*Customer, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !company.IsValid() {
		return nil, fmt.Errorf("invalid company tag: %s", company)
	}
	if !utils.IsLocalPhone(phone) {
		return nil, fmt.Errorf("phone number must be a 10-digit local number")
	}

	now := biztime.NowUTC()
	return &Customer{
		username:  username,
		company:   company,
		phone:     phone,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCustomer rebuilds a customer from persistence.
func ReconstructCustomer(id uint, username string, company Company, phone string, createdAt, updatedAt time.Time) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	return &Customer{
		id:        id,
		username:  username,
		company:   company,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Username() string     { return c.username }
func (c *Customer) Company() Company     { return c.company }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// SetID sets the customer ID (only for persistence layer use)
func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateProfile replaces the mutable customer attributes.
func (c *Customer) UpdateProfile(username string, company Company, phone string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if !company.IsValid() {
		return fmt.Errorf("invalid company tag: %s", company)
	}
	if !utils.IsLocalPhone(phone) {
		return fmt.Errorf("phone number must be a 10-digit local number")
	}
	c.username = username
	c.company = company
	c.phone = phone
	c.updatedAt = biztime.NowUTC()
	return nil
}
