package placeholder

import (
	"testing"
)

func TestRuleForMatchesByFieldName(t *testing.T) {
	tests := []struct {
		field    string
		wantRule string
	}{
		{"Дата договора", "date"},
		{"Дата начала аренды", "date"},
		{"ИНН Заказчика", "taxid"},
		{"INN", "taxid"},
		{"Сумма аренды", "amount"},
		{"Стоимость услуг", "amount"},
		{"Цена за единицу", "amount"},
		{"Название стороны", "text"},
		{"Адрес офиса", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got := RuleFor(tt.field)
			if got.Name != tt.wantRule {
				t.Errorf("RuleFor(%q) = %q, want %q", tt.field, got.Name, tt.wantRule)
			}
		})
	}
}

func TestDateRule(t *testing.T) {
	rule := RuleFor("Дата договора")

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"01.01.2023", false},
		{"31.12.2025", false},
		{"2023-01-01", true},
		{"32.01.2023", true},
		{"1.1.2023", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := rule.Validate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestTaxIDRule(t *testing.T) {
	rule := RuleFor("ИНН Исполнителя")

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"7707083893", false},   // 10 digits
		{"770708389312", false}, // 12 digits
		{"77070838931", true},   // 11 digits
		{"77070838ab", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := rule.Validate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestAmountRule(t *testing.T) {
	rule := RuleFor("Сумма аренды")

	if err := rule.Validate("100000"); err != nil {
		t.Errorf("digits-only amount rejected: %v", err)
	}
	for _, bad := range []string{"100 000", "100000 руб", "-5", "12.5", ""} {
		if err := rule.Validate(bad); err == nil {
			t.Errorf("Validate(%q) expected error, got nil", bad)
		}
	}
}

func TestDefaultRuleRequiresValue(t *testing.T) {
	rule := RuleFor("Название стороны")

	if err := rule.Validate("ООО Ромашка"); err != nil {
		t.Errorf("plain text rejected: %v", err)
	}
	if err := rule.Validate("   "); err == nil {
		t.Error("blank value accepted")
	}
}
