package bot

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"taskbot/internal/service"
)

// AddTaskHandler handles "/add_task <название>, <ЧЧ:ММ>, <ДД.ММ.ГГ>".
type AddTaskHandler struct {
	svc *service.Service
	log zerolog.Logger
}

func NewAddTaskHandler(svc *service.Service, log zerolog.Logger) *AddTaskHandler {
	return &AddTaskHandler{svc: svc, log: log}
}

func (h *AddTaskHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	handle, chatID, ok := senderHandle(update)
	if !ok {
		if update != nil && update.Message != nil {
			_ = sendWithMenu(ctx, b, update.Message.Chat.ID, replyNoUsername)
		}
		return
	}

	reply := h.svc.AddTask(ctx, handle, update.Message.Text)
	if err := sendWithMenu(ctx, b, chatID, reply); err != nil {
		h.log.Error().Err(err).Str("handle", handle).Msg("failed to send add_task reply")
	}
}
