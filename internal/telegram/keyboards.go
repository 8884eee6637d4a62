package telegram

import (
	"readydoc-bot/internal/constant"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// keyboardFor maps a reply's keyboard code to the Telegram markup to attach.
// Returns nil when the message should leave the current keyboard untouched.
func keyboardFor(code string) interface{} {
	switch code {
	case constant.KeyboardMain:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(constant.ButtonCreate),
				tgbotapi.NewKeyboardButton(constant.ButtonCancel),
			),
		)
	case constant.KeyboardSkip:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(constant.ButtonSkip),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(constant.ButtonCancel),
			),
		)
	case constant.KeyboardConfirm:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(constant.ButtonConfirm),
				tgbotapi.NewKeyboardButton(constant.ButtonAmend),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(constant.ButtonCancel),
			),
		)
	case constant.KeyboardRemove:
		return tgbotapi.NewRemoveKeyboard(false)
	default:
		return nil
	}
}
