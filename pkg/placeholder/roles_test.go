package placeholder

import (
	"testing"
)

func TestParseRoleMap(t *testing.T) {
	raw := "Вот результат:\n```json\n" +
		`{"document_type":"lease","roles":{"Арендодатель":["ИНН Арендодателя"],"Арендатор":["ИНН Арендатора"]},` +
		`"field_descriptions":{"ИНН Арендодателя":"ИНН собственника помещения"}}` +
		"\n```"

	m, err := ParseRoleMap(raw)
	if err != nil {
		t.Fatalf("ParseRoleMap() error = %v", err)
	}
	if m.DocumentType != "lease" {
		t.Errorf("DocumentType = %q, want %q", m.DocumentType, "lease")
	}

	role, ok := m.RoleOf("ИНН Арендатора")
	if !ok || role != "Арендатор" {
		t.Errorf("RoleOf = %q, %v; want Арендатор, true", role, ok)
	}
	if _, ok := m.RoleOf("Неизвестное поле"); ok {
		t.Error("RoleOf matched a field that was never classified")
	}
}

func TestParseRoleMapMalformedFallsBackEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no json at all", "Извини, не могу классифицировать поля."},
		{"broken json", `{"roles": [this is not json}`},
		{"empty reply", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseRoleMap(tt.raw)
			if err == nil {
				t.Error("expected an error for malformed reply")
			}
			if m.Roles == nil || m.FieldDescriptions == nil {
				t.Error("fallback maps must be non-nil")
			}
			if len(m.Roles) != 0 {
				t.Errorf("fallback role map must be empty, got %v", m.Roles)
			}
		})
	}
}
