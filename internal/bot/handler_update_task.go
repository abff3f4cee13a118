package bot

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"taskbot/internal/service"
)

// UpdateTaskHandler handles "/update_task <поле>, <название задачи>, <новое значение>".
type UpdateTaskHandler struct {
	svc *service.Service
	log zerolog.Logger
}

func NewUpdateTaskHandler(svc *service.Service, log zerolog.Logger) *UpdateTaskHandler {
	return &UpdateTaskHandler{svc: svc, log: log}
}

func (h *UpdateTaskHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	handle, chatID, ok := senderHandle(update)
	if !ok {
		if update != nil && update.Message != nil {
			_ = sendWithMenu(ctx, b, update.Message.Chat.ID, replyNoUsername)
		}
		return
	}

	reply := h.svc.UpdateTask(ctx, handle, update.Message.Text)
	if err := sendWithMenu(ctx, b, chatID, reply); err != nil {
		h.log.Error().Err(err).Str("handle", handle).Msg("failed to send update_task reply")
	}
}
