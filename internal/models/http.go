package models

import (
	"encoding/json"
	"strings"
)

// StringList decodes from either a JSON array of strings or a single
// comma-separated string, which is how the profile form submits tech stacks.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var parts []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	*s = parts
	return nil
}

type FeedbackRequest struct {
	InterviewID string        `json:"interviewId"`
	UserID      string        `json:"userId"`
	Transcript  []ChatMessage `json:"transcript"`
	FeedbackID  string        `json:"feedbackId,omitempty"`
}

type FeedbackResponse struct {
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedbackId,omitempty"`
}

type GenerateInterviewRequest struct {
	UserID    string     `json:"userId"`
	Role      string     `json:"role"`
	Level     string     `json:"level"`
	Type      string     `json:"type"`
	Techstack StringList `json:"techstack"`
	Amount    int        `json:"amount"`
}

type GenerateInterviewResponse struct {
	InterviewID string   `json:"interviewId"`
	Questions   []string `json:"questions"`
}

type ChatRequest struct {
	UserID   string        `json:"userId,omitempty"`
	Messages []ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// UpdateProfileRequest carries only the fields the client wants to change.
// Absent fields are left untouched by the merge-update.
type UpdateProfileRequest struct {
	Name                   *string     `json:"name,omitempty"`
	ProfileURL             *string     `json:"profileURL,omitempty"`
	Phone                  *string     `json:"phone,omitempty"`
	Location               *string     `json:"location,omitempty"`
	Linkedin               *string     `json:"linkedin,omitempty"`
	Github                 *string     `json:"github,omitempty"`
	Portfolio              *string     `json:"portfolio,omitempty"`
	Education              *string     `json:"education,omitempty"`
	Experience             *string     `json:"experience,omitempty"`
	PreferredRole          *string     `json:"preferredRole,omitempty"`
	InterviewLanguage      *string     `json:"interviewLanguage,omitempty"`
	PreferredInterviewType *StringList `json:"preferredInterviewType,omitempty"`
	PreferredTechStack     *StringList `json:"preferredTechStack,omitempty"`
	Theme                  *string     `json:"theme,omitempty"`
	EmailNotifications     *bool       `json:"emailNotifications,omitempty"`
}
