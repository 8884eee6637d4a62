package constant

// User-facing bot replies (RU locale, matching the product copy).
const (
	MsgGreeting = "Привет! Я ReadyDoc — бот, который генерирует готовые юридические документы. Опиши, что тебе нужно 👇"

	MsgAskDescription = "📝 Опиши, какой документ тебе нужен: тип договора, стороны, сроки, суммы."

	MsgCancelled = "Ок! Если нужно — нажми «Создать документ»"

	MsgChecking = "🔍 Проверяю, можно ли составить документ…"

	MsgCacheHit = "📦 Нашёл похожий запрос — использую готовый текст."

	MsgClarifyPrefix = "🤔 Пожалуйста, уточни:\n"

	MsgProcessingClarification = "🔄 Обрабатываю дополненную информацию..."

	MsgDocumentReady = "📄 Документ готов."

	MsgReviewPrefix = "⚖️ Юридическая проверка:\n"

	MsgGenericError = "⚠️ Что-то пошло не так. Попробуй снова или измени описание."

	MsgDescriptionTooLong = "⚠️ Описание слишком длинное. Сократи его, пожалуйста, и отправь ещё раз."

	MsgFillIntro = "В документе есть поля, которые нужно заполнить. Отвечай по одному, либо жми «⏭ Пропустить»."

	MsgConfirmIntro = "Черновик готов. Нажми «✅ Готово», чтобы получить файл, или «➕ Добавить условие»."

	MsgAskAmendment = "✏️ Опиши, какой пункт добавить в договор."

	MsgUseButtons = "Выбери действие на клавиатуре ниже 👇"

	MsgUnfilledWarningPrefix = "⚠️ В документе остались незаполненные поля: "

	MsgNoActiveSession = "Сейчас нет активного документа. Нажми «Создать документ», чтобы начать."
)

// Keyboard button labels. Inbound message text is matched against these.
const (
	ButtonCreate  = "✍️ Создать документ"
	ButtonCancel  = "❌ Отмена"
	ButtonSkip    = "⏭ Пропустить"
	ButtonConfirm = "✅ Готово"
	ButtonAmend   = "➕ Добавить условие"
)
