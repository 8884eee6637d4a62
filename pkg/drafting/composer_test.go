package drafting

import (
	"strings"
	"testing"
)

func TestDrafting(t *testing.T) {
	c := NewComposer()

	t.Run("description only", func(t *testing.T) {
		got := c.Drafting("  Нужен договор аренды офиса  ", nil)
		if got != "Нужен договор аренды офиса" {
			t.Errorf("Drafting() = %q", got)
		}
	})

	t.Run("answers appended in order", func(t *testing.T) {
		got := c.Drafting("Нужен договор аренды офиса", []Answer{
			{Question: "На какой срок?", Reply: "на 1 год"},
			{Question: "Какая площадь?", Reply: "30 м²"},
		})
		want := "Нужен договор аренды офиса. Дополнение: на 1 год. Дополнение: 30 м²"
		if got != want {
			t.Errorf("Drafting() = %q, want %q", got, want)
		}
	})
}

func TestReviewEmbedsDocument(t *testing.T) {
	c := NewComposer()
	got := c.Review("ДОГОВОР АРЕНДЫ\n1. Предмет договора.")
	if !strings.Contains(got, "ДОГОВОР АРЕНДЫ") {
		t.Error("review instruction must embed the document text")
	}
	if !strings.Contains(got, "риски") {
		t.Error("review instruction must ask for risk analysis")
	}
}

func TestAmendmentEmbedsTopicAndDocument(t *testing.T) {
	c := NewComposer()
	got := c.Amendment("текст договора", "конфиденциальности")
	if !strings.Contains(got, "конфиденциальности") || !strings.Contains(got, "текст договора") {
		t.Errorf("Amendment() = %q", got)
	}
}

func TestClassificationListsPlaceholders(t *testing.T) {
	c := NewComposer()
	got := c.Classification("документ", []string{"ИНН Заказчика", "Дата договора"})
	if !strings.Contains(got, "ИНН Заказчика, Дата договора") {
		t.Errorf("Classification() must list the fields, got %q", got)
	}
	if !strings.Contains(got, "document_type") || !strings.Contains(got, "field_descriptions") {
		t.Error("Classification() must name the expected JSON keys")
	}
}
