package bot

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"taskbot/internal/service"
)

// DeleteTaskHandler handles "/delete_task <название задачи>".
type DeleteTaskHandler struct {
	svc *service.Service
	log zerolog.Logger
}

func NewDeleteTaskHandler(svc *service.Service, log zerolog.Logger) *DeleteTaskHandler {
	return &DeleteTaskHandler{svc: svc, log: log}
}

func (h *DeleteTaskHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	handle, chatID, ok := senderHandle(update)
	if !ok {
		if update != nil && update.Message != nil {
			_ = sendWithMenu(ctx, b, update.Message.Chat.ID, replyNoUsername)
		}
		return
	}

	reply := h.svc.DeleteTask(ctx, handle, update.Message.Text)
	if err := sendWithMenu(ctx, b, chatID, reply); err != nil {
		h.log.Error().Err(err).Str("handle", handle).Msg("failed to send delete_task reply")
	}
}
