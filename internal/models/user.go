package models

// NotificationPreferences holds per-channel notification toggles.
type NotificationPreferences struct {
	Email bool `json:"email"`
}

// UserProfile is the typed shape of a `users` document. Optional fields keep
// their zero value when the stored document omits them.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Career & interview preferences
	PreferredRole          string   `json:"preferredRole,omitempty"`
	PreferredTechStack     []string `json:"preferredTechStack,omitempty"`
	PreferredInterviewType []string `json:"preferredInterviewType,omitempty"`
	Experience             string   `json:"experience,omitempty"`
	InterviewLanguage      string   `json:"interviewLanguage,omitempty"`

	// Contact & social
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location,omitempty"`
	Linkedin   string `json:"linkedin,omitempty"`
	Github     string `json:"github,omitempty"`
	Portfolio  string `json:"portfolio,omitempty"`
	Education  string `json:"education,omitempty"`
	ProfileURL string `json:"profileURL,omitempty"`

	// Settings
	Theme                   string                   `json:"theme,omitempty"`
	NotificationPreferences *NotificationPreferences `json:"notificationPreferences,omitempty"`
}
