package bot

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// replyNoUsername is sent when the sender's account has no @username: the
// handle is the only key tasks are stored under.
const replyNoUsername = "Ошибка: У вашего аккаунта Telegram нет имени пользователя (username). " +
	"Добавьте его в настройках и повторите команду."

func sendWithMenu(ctx context.Context, b *bot.Bot, chatID int64, text string) error {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: buildMainKeyboard(),
	})
	return err
}

func buildMainKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: "/view_task"}},
			{{Text: "/add_task"}, {Text: "/update_task"}, {Text: "/delete_task"}},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: false,
		Selective:       false,
	}
}

// senderHandle extracts the chat handle a command is keyed by. ok is false
// when the update carries no usable message or username.
func senderHandle(update *models.Update) (handle string, chatID int64, ok bool) {
	if update == nil || update.Message == nil {
		return "", 0, false
	}
	return update.Message.Chat.Username, update.Message.Chat.ID, update.Message.Chat.Username != ""
}
