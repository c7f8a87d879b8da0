package mappers

import (
	"hostdesk/internal/domain/customer"
	"hostdesk/internal/infrastructure/persistence/models"
)

// DomainMapper handles conversion between Domain entity and model.
type DomainMapper interface {
	ToModel(d *customer.Domain) *models.DomainModel
	ToDomain(model *models.DomainModel) (*customer.Domain, error)
}

type DomainMapperImpl struct{}

func NewDomainMapper() DomainMapper {
	return &DomainMapperImpl{}
}

func (m *DomainMapperImpl) ToModel(d *customer.Domain) *models.DomainModel {
	return &models.DomainModel{
		ID:                 d.ID(),
		CustomerID:         d.CustomerID(),
		URL:                d.URL(),
		WPAdminURL:         d.WPAdminURL(),
		WPSecretKey:        d.WPSecretKey(),
		WPUpdateAvailable:  d.WPUpdateAvailable(),
		PluginUpdatesCount: d.PluginUpdatesCount(),
		ThemeUpdatesCount:  d.ThemeUpdatesCount(),
		LastChecked:        d.LastChecked(),
		CreatedAt:          d.CreatedAt(),
	}
}

func (m *DomainMapperImpl) ToDomain(model *models.DomainModel) (*customer.Domain, error) {
	return customer.ReconstructDomain(customer.DomainReconstructParams{
		ID:                 model.ID,
		CustomerID:         model.CustomerID,
		URL:                model.URL,
		WPAdminURL:         model.WPAdminURL,
		WPSecretKey:        model.WPSecretKey,
		WPUpdateAvailable:  model.WPUpdateAvailable,
		PluginUpdatesCount: model.PluginUpdatesCount,
		ThemeUpdatesCount:  model.ThemeUpdatesCount,
		LastChecked:        model.LastChecked,
		CreatedAt:          model.CreatedAt,
	})
}
