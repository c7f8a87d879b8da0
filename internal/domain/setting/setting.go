package setting

// Settings is the singleton configuration row. The reminder core reads the
// admin phone and the auto-messages toggle; the rest belongs to the settings
// page and the SMS gateway credentials.
type Settings struct {
	AdminPhone              string
	AutoMessagesEnabled     bool
	ServerMonthlyCost       float64
	SMSSource               string
	SMSUsername             string
	SMSToken                string
	AutoWordPressUpdates    bool
	WordPressUpdateSchedule string
}

// Defaults returns the fallback settings used when the settings row cannot be
// read: a known admin phone and messages enabled, preferring availability
// over strict correctness for this non-critical path.
func Defaults() Settings {
	return Settings{
		AdminPhone:          "0525143581",
		AutoMessagesEnabled: true,
	}
}
