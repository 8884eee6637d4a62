package placeholder

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no placeholders",
			text: "Договор составлен в двух экземплярах.",
			want: nil,
		},
		{
			name: "single placeholder",
			text: "Арендодатель: [Название стороны]",
			want: []string{"Название стороны"},
		},
		{
			name: "multiple placeholders keep order",
			text: "Договор № [Номер договора] от [Дата договора]. Сумма: [Сумма аренды] руб.",
			want: []string{"Номер договора", "Дата договора", "Сумма аренды"},
		},
		{
			name: "duplicates collapse to first occurrence",
			text: "[ИНН Заказчика] ... реквизиты: [ИНН Заказчика]",
			want: []string{"ИНН Заказчика"},
		},
		{
			name: "empty brackets ignored",
			text: "пустые [] скобки и [Поле]",
			want: []string{"Поле"},
		},
		{
			name: "latin names",
			text: "Effective date: [START_DATE], parties: [PARTY_A] and [PARTY_B]",
			want: []string{"START_DATE", "PARTY_A", "PARTY_B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubstituteFullMapLeavesNoBrackets(t *testing.T) {
	text := "Договор № [Номер договора] от [Дата договора] на сумму [Сумма] руб."
	values := map[string]string{
		"Номер договора": "42-А",
		"Дата договора":  "01.01.2023",
		"Сумма":          "100000",
	}

	got := Substitute(text, values)

	if remaining := Extract(got); remaining != nil {
		t.Errorf("expected no placeholders left, got %v in %q", remaining, got)
	}
	want := "Договор № 42-А от 01.01.2023 на сумму 100000 руб."
	if got != want {
		t.Errorf("Substitute() = %q, want %q", got, want)
	}
}

func TestSubstitutePartialMapIsIdempotent(t *testing.T) {
	text := "Стороны: [Арендодатель] и [Арендатор]."
	values := map[string]string{"Арендодатель": "ООО Ромашка"}

	once := Substitute(text, values)
	twice := Substitute(once, values)

	if once != twice {
		t.Errorf("substitution not idempotent: %q vs %q", once, twice)
	}
	remaining := Extract(once)
	if len(remaining) != 1 || remaining[0] != "Арендатор" {
		t.Errorf("expected exactly [Арендатор] to survive, got %v", remaining)
	}
}

func TestSubstituteSkipsEmptyValues(t *testing.T) {
	text := "Исполнитель: [Исполнитель]"
	got := Substitute(text, map[string]string{"Исполнитель": "  "})
	if got != text {
		t.Errorf("blank value must not erase the placeholder, got %q", got)
	}
}
