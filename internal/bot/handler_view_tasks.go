package bot

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"taskbot/internal/service"
)

// ViewTasksHandler handles /view_task and lists the sender's tasks.
type ViewTasksHandler struct {
	svc *service.Service
	log zerolog.Logger
}

func NewViewTasksHandler(svc *service.Service, log zerolog.Logger) *ViewTasksHandler {
	return &ViewTasksHandler{svc: svc, log: log}
}

func (h *ViewTasksHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	handle, chatID, ok := senderHandle(update)
	if !ok {
		if update != nil && update.Message != nil {
			_ = sendWithMenu(ctx, b, update.Message.Chat.ID, replyNoUsername)
		}
		return
	}

	reply := h.svc.ViewTasks(ctx, handle)
	if err := sendWithMenu(ctx, b, chatID, reply); err != nil {
		h.log.Error().Err(err).Str("handle", handle).Msg("failed to send view_task reply")
	}
}
