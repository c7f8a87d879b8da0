package dto

// RunRemindersRequest is the trigger payload. Reset explicitly re-arms the
// reminder flags for subscriptions inside the current windows before
// selecting, so a partially failed run can be re-sent.
type RunRemindersRequest struct {
	Reset bool `json:"reset"`
}

// ReminderDetail reports one dispatched subscription reminder.
type ReminderDetail struct {
	Customer      string `json:"user"`
	Phone         string `json:"phone"`
	Domain        string `json:"domain"`
	ExpireDate    string `json:"expireDate"`
	UserSMSSent   bool   `json:"userSmsSent"`
	AdminSMSSent  bool   `json:"adminSmsSent"`
	UserSMSError  string `json:"userSmsError,omitempty"`
	AdminSMSError string `json:"adminSmsError,omitempty"`
}

// RunRemindersResult is the aggregate report of one reminder run.
type RunRemindersResult struct {
	Success           bool             `json:"success"`
	Message           string           `json:"message,omitempty"`
	OneMonthReminders int              `json:"oneMonthReminders"`
	OneWeekReminders  int              `json:"oneWeekReminders"`
	OneMonthDetails   []ReminderDetail `json:"oneMonthDetails"`
	OneWeekDetails    []ReminderDetail `json:"oneWeekDetails"`
}
