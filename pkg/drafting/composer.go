// Package drafting builds the instructions sent to the generation service.
// No templating engine: fixed boilerplate blocks concatenated with the
// user-supplied material, which keeps every instruction inspectable in code.
package drafting

import (
	"fmt"
	"strings"
)

// System prompts for the distinct call kinds.
const (
	DraftingSystemPrompt = "Ты — опытный российский юрист. Составь ПОЛНЫЙ текст договора на основании данных клиента. " +
		"Соблюдай актуальное законодательство РФ. Включай: преамбулу, предмет, срок, обязанности сторон, " +
		"ответственность, оплату, расторжение, подписи. Недостающие реквизиты отмечай плейсхолдерами в квадратных " +
		"скобках, например [ИНН Заказчика] или [Дата начала аренды]. Стиль — официальный. Только текст договора."

	ClarifyingSystemPrompt = "Ты — российский юрист. Если описания клиента достаточно для составления договора, ответь " +
		"словом ГОТОВО. Иначе сформулируй ОДИН конкретный вопрос к клиенту, чтобы составить договор максимально точно " +
		"и без лишнего. Не задавай больше одного вопроса за раз."

	AmendmentSystemPrompt = "Ты юрист. Пиши только текст пункта для вставки в договор."

	ClassificationSystemPrompt = "Ты юридический ассистент. Отвечай только валидным JSON без комментариев и лишнего текста."
)

// Composer assembles user prompts for each generation call.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Answer is a clarification question with the user's reply, appended to the
// drafting prompt in the order the questions were asked.
type Answer struct {
	Question string
	Reply    string
}

// Drafting combines the free-text description with accumulated answers into
// the drafting instruction.
func (c *Composer) Drafting(description string, answers []Answer) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(description))
	for _, a := range answers {
		b.WriteString(". Дополнение: ")
		b.WriteString(strings.TrimSpace(a.Reply))
	}
	return b.String()
}

// Clarifying builds the instruction for the single follow-up question call.
func (c *Composer) Clarifying(description string) string {
	return strings.TrimSpace(description)
}

// Review builds the legal self-check instruction over a finished draft.
func (c *Composer) Review(documentText string) string {
	var b strings.Builder
	b.WriteString("Проанализируй юридический текст ниже: выяви риски, устаревшие формулировки и нарушения ")
	b.WriteString("законодательства РФ. Если всё хорошо — ответь кратко, что документ корректен. Текст:\n\n")
	b.WriteString(documentText)
	return b.String()
}

// Amendment builds the editing instruction that appends a section on the
// given topic to the current document.
func (c *Composer) Amendment(documentText, topic string) string {
	return fmt.Sprintf(
		"Добавь в конец этого договора пункт о %s в официальном юридическом стиле. Документ:\n\n%s",
		strings.TrimSpace(topic), documentText,
	)
}

// Classification builds the role-taxonomy instruction. The reply is parsed
// defensively by pkg/placeholder; this call is best-effort only.
func (c *Composer) Classification(documentText string, placeholders []string) string {
	var b strings.Builder
	b.WriteString("Ниже текст договора и список полей в квадратных скобках. Верни JSON с ключами: ")
	b.WriteString(`"document_type" (краткий тип документа, например services, act, nda, lease), `)
	b.WriteString(`"roles" (объект: название стороны -> массив полей, принадлежащих ей), `)
	b.WriteString(`"field_descriptions" (объект: поле -> короткая подсказка для заполнения).`)
	b.WriteString("\n\nПоля: ")
	b.WriteString(strings.Join(placeholders, ", "))
	b.WriteString("\n\nДокумент:\n")
	b.WriteString(documentText)
	return b.String()
}
