package telegram

import (
	"context"
	"time"

	"readydoc-bot/internal/constant"
	"readydoc-bot/internal/pkg/logger"
	"readydoc-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handlerTimeout bounds one update end to end, generation calls included.
const handlerTimeout = 3 * time.Minute

// Bot runs the Telegram long-poll loop and routes updates into the dialog
// service.
type Bot struct {
	api    *tgbotapi.BotAPI
	dialog service.IDialogService
	logger logger.ILogger
}

func NewBot(token string, dialog service.IDialogService, log logger.ILogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		dialog: dialog,
		logger: log,
	}, nil
}

// Run blocks, consuming updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	b.logger.Info("Bot", "Telegram bot started", map[string]interface{}{"username": b.api.Self.UserName})

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			go b.handleMessage(update.Message)
		}
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	userID := msg.From.ID
	chatID := msg.Chat.ID

	var (
		replies []service.Reply
		err     error
	)
	switch {
	case msg.IsCommand():
		replies, err = b.handleCommand(ctx, userID, chatID, msg.Command())
	case msg.Text == constant.ButtonCreate:
		replies, err = b.dialog.Create(ctx, userID, chatID)
	case msg.Text == constant.ButtonCancel:
		replies, err = b.dialog.Cancel(ctx, userID)
	default:
		replies, err = b.dialog.HandleText(ctx, userID, chatID, msg.Text)
	}

	if err != nil {
		b.logger.Error("Bot", "Update handling failed", map[string]interface{}{
			"user_id": userID, "error": err.Error(),
		})
		replies = []service.Reply{{Text: constant.MsgGenericError, Keyboard: constant.KeyboardMain}}
	}

	b.send(chatID, replies)
}

func (b *Bot) handleCommand(ctx context.Context, userID, chatID int64, command string) ([]service.Reply, error) {
	switch command {
	case "start":
		return b.dialog.Start(ctx, userID, chatID)
	case "getdoc", "autodoc", "smartdoc":
		// Legacy aliases kept so pinned old chats keep working.
		return b.dialog.Create(ctx, userID, chatID)
	case "cancel":
		return b.dialog.Cancel(ctx, userID)
	default:
		return []service.Reply{{Text: constant.MsgGreeting, Keyboard: constant.KeyboardMain}}, nil
	}
}

func (b *Bot) send(chatID int64, replies []service.Reply) {
	for _, reply := range replies {
		var msg tgbotapi.Chattable
		if reply.DocumentPath != "" {
			doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(reply.DocumentPath))
			doc.Caption = reply.DocumentCaption
			msg = doc
		} else {
			out := tgbotapi.NewMessage(chatID, reply.Text)
			if markup := keyboardFor(reply.Keyboard); markup != nil {
				out.ReplyMarkup = markup
			}
			msg = out
		}

		if _, err := b.api.Send(msg); err != nil {
			b.logger.Error("Bot", "Send failed", map[string]interface{}{
				"chat_id": chatID, "error": err.Error(),
			})
		}
	}
}
