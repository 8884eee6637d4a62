package placeholder

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Rule describes how one class of placeholder fields is prompted for and
// validated. Rules are matched against the lowercased field name; the first
// match wins, so the declarative table below is ordered specific-first.
type Rule struct {
	Name     string
	pattern  *regexp.Regexp
	Prompt   string // shown to the user when asking for this field
	ErrorMsg string // shown on validation failure
	varTag   string // validator/v10 tag applied to the raw value
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// DD.MM.YYYY, calendar-checked
	_ = v.RegisterValidation("rudate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`).MatchString(s) {
			return false
		}
		_, err := time.Parse("02.01.2006", s)
		return err == nil
	})

	// digits only, at least one
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	// Russian tax ID: 10 digits (legal entity) or 12 (individual)
	_ = v.RegisterValidation("rutaxid", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 10 && len(s) != 12 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	return v
}

var rules = []Rule{
	{
		Name:     "date",
		pattern:  regexp.MustCompile(`дата|срок действия|date`),
		Prompt:   "Укажи дату в формате ДД.ММ.ГГГГ, например 01.01.2023.",
		ErrorMsg: "⚠️ Дата должна быть в формате ДД.ММ.ГГГГ, например 01.01.2023. Попробуй ещё раз.",
		varTag:   "required,rudate",
	},
	{
		Name:     "taxid",
		pattern:  regexp.MustCompile(`инн|inn|tax`),
		Prompt:   "Укажи ИНН: 10 цифр для организации или 12 для физического лица.",
		ErrorMsg: "⚠️ ИНН должен состоять из 10 или 12 цифр. Попробуй ещё раз.",
		varTag:   "required,rutaxid",
	},
	{
		Name:     "amount",
		pattern:  regexp.MustCompile(`сумма|стоимост|цена|amount|price`),
		Prompt:   "Укажи сумму цифрами, без пробелов и валюты.",
		ErrorMsg: "⚠️ Сумма должна содержать только цифры. Попробуй ещё раз.",
		varTag:   "required,digits",
	},
	{
		Name:     "text",
		pattern:  regexp.MustCompile(`.`),
		Prompt:   "Введи значение для этого поля.",
		ErrorMsg: "⚠️ Значение не может быть пустым. Попробуй ещё раз.",
		varTag:   "required,max=500",
	},
}

// RuleFor looks the field name up in the rule table. The catch-all text rule
// guarantees a non-nil result.
func RuleFor(fieldName string) Rule {
	lower := strings.ToLower(fieldName)
	for _, r := range rules {
		if r.pattern.MatchString(lower) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// Validate checks a user-supplied value against the rule.
func (r Rule) Validate(value string) error {
	value = strings.TrimSpace(value)
	if err := validate.Var(value, r.varTag); err != nil {
		return errors.New(r.ErrorMsg)
	}
	return nil
}
