package placeholder

import (
	"encoding/json"
	"errors"
	"regexp"
)

// RoleMap is the best-effort taxonomy returned by the classification call.
// It is advisory only: prompts read from it when present, nothing depends on
// it being complete or correct.
type RoleMap struct {
	DocumentType      string              `json:"document_type"`
	Roles             map[string][]string `json:"roles"`
	FieldDescriptions map[string]string   `json:"field_descriptions"`
}

var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ErrNoRoleMap is returned when no parsable JSON object is found in the raw
// model reply. Callers fall back to an empty map.
var ErrNoRoleMap = errors.New("no role map found in reply")

// ParseRoleMap extracts the first {...} block from a raw model reply and
// unmarshals it. Models wrap JSON in prose or code fences often enough that
// a strict parse of the whole reply would fail most of the time.
func ParseRoleMap(raw string) (RoleMap, error) {
	empty := RoleMap{
		Roles:             map[string][]string{},
		FieldDescriptions: map[string]string{},
	}

	block := jsonBlockPattern.FindString(raw)
	if block == "" {
		return empty, ErrNoRoleMap
	}

	var parsed RoleMap
	if err := json.Unmarshal([]byte(block), &parsed); err != nil {
		return empty, ErrNoRoleMap
	}
	if parsed.Roles == nil {
		parsed.Roles = map[string][]string{}
	}
	if parsed.FieldDescriptions == nil {
		parsed.FieldDescriptions = map[string]string{}
	}
	return parsed, nil
}

// RoleOf returns the party label owning the field, if classified.
func (m RoleMap) RoleOf(fieldName string) (string, bool) {
	for role, fields := range m.Roles {
		for _, f := range fields {
			if f == fieldName {
				return role, true
			}
		}
	}
	return "", false
}
