package dto

import "hostdesk/internal/domain/setting"

type SettingsDTO struct {
	AdminPhone              string  `json:"admin_phone"`
	AutoMessagesEnabled     bool    `json:"auto_messages_enabled"`
	ServerMonthlyCost       float64 `json:"server_monthly_cost"`
	SMSSource               string  `json:"sms_source"`
	SMSUsername             string  `json:"sms_username"`
	SMSTokenSet             bool    `json:"sms_token_set"`
	AutoWordPressUpdates    bool    `json:"auto_wordpress_updates"`
	WordPressUpdateSchedule string  `json:"wordpress_update_schedule"`
}

type UpdateSettingsRequest struct {
	AdminPhone              string   `json:"admin_phone" validate:"omitempty,localphone"`
	AutoMessagesEnabled     *bool    `json:"auto_messages_enabled"`
	ServerMonthlyCost       *float64 `json:"server_monthly_cost" validate:"omitempty,gte=0"`
	SMSSource               *string  `json:"sms_source"`
	SMSUsername             *string  `json:"sms_username"`
	SMSToken                *string  `json:"sms_token"`
	AutoWordPressUpdates    *bool    `json:"auto_wordpress_updates"`
	WordPressUpdateSchedule *string  `json:"wordpress_update_schedule"`
}

// ToSettingsDTO never exposes the gateway token, only whether one is stored.
func ToSettingsDTO(s setting.Settings) *SettingsDTO {
	return &SettingsDTO{
		AdminPhone:              s.AdminPhone,
		AutoMessagesEnabled:     s.AutoMessagesEnabled,
		ServerMonthlyCost:       s.ServerMonthlyCost,
		SMSSource:               s.SMSSource,
		SMSUsername:             s.SMSUsername,
		SMSTokenSet:             s.SMSToken != "",
		AutoWordPressUpdates:    s.AutoWordPressUpdates,
		WordPressUpdateSchedule: s.WordPressUpdateSchedule,
	}
}
