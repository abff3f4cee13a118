package bot

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"taskbot/internal/db/user"
	"taskbot/internal/service"
)

// StartHandler registers the sender on /start.
type StartHandler struct {
	svc *service.Service
	log zerolog.Logger
}

func NewStartHandler(svc *service.Service, log zerolog.Logger) *StartHandler {
	return &StartHandler{svc: svc, log: log}
}

func (h *StartHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	handle, chatID, ok := senderHandle(update)
	if !ok {
		if update != nil && update.Message != nil {
			_ = sendWithMenu(ctx, b, update.Message.Chat.ID, replyNoUsername)
		}
		return
	}

	reply := h.svc.EnsureUserExists(ctx, user.User{Handle: handle})
	if err := sendWithMenu(ctx, b, chatID, reply); err != nil {
		h.log.Error().Err(err).Str("handle", handle).Msg("failed to send start reply")
	}
}
