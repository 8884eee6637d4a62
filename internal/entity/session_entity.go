package entity

import (
	"time"
)

// Answer pairs a clarifying question with the user's reply, in ask order.
type Answer struct {
	Question string `json:"question"`
	Reply    string `json:"reply"`
}

// DialogSession is the per-user conversational state. One user has at most
// one active session; it is created on /start or the create button, mutated
// by every step handler and destroyed on completion, cancellation or error.
type DialogSession struct {
	UserID int64  `json:"user_id"`
	ChatID int64  `json:"chat_id"`
	Step   string `json:"step"`

	Description  string   `json:"description"`
	Question     string   `json:"question,omitempty"` // pending clarifying question
	Answers      []Answer `json:"answers,omitempty"`
	DocumentText string   `json:"document_text,omitempty"`
	ReviewNotes  string   `json:"review_notes,omitempty"`
	DocumentType string   `json:"document_type,omitempty"`
	Mode         string   `json:"mode,omitempty"`

	// Variable filling loop state.
	Placeholders []string            `json:"placeholders,omitempty"`
	VarIndex     int                 `json:"var_index"`
	Filled       map[string]string   `json:"filled,omitempty"`
	Skipped      []string            `json:"skipped,omitempty"`
	Roles        map[string][]string `json:"roles,omitempty"`
	FieldHints   map[string]string   `json:"field_hints,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentField returns the placeholder the filling loop is parked on.
func (s *DialogSession) CurrentField() (string, bool) {
	if s.VarIndex < 0 || s.VarIndex >= len(s.Placeholders) {
		return "", false
	}
	return s.Placeholders[s.VarIndex], true
}

// RoleOf returns the contract party owning the field, if classified.
func (s *DialogSession) RoleOf(field string) (string, bool) {
	for role, fields := range s.Roles {
		for _, f := range fields {
			if f == field {
				return role, true
			}
		}
	}
	return "", false
}
