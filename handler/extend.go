package handler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/svmhdvn/private-channel-bot/domain/infra"
	"github.com/svmhdvn/private-channel-bot/domain/model"
)

const (
	extendedText     = ":white_check_mark: Successfully extended this channel's expiry date by a week."
	extendFailedText = "Failed to extend this channel's expiry date, please contact the administrators."
)

const extendBy = model.ExtendDays * 24 * time.Hour

func (h *Handler) extendChannel(ctx context.Context, a extendChannelAction) *model.Reply {
	ch, err := h.ds.ExtendChannelExpiry(ctx, a.channelID, extendBy)
	if err != nil {
		if errors.Is(err, infra.ErrChannelNotFound) {
			slog.Warn("Extend untracked channel", slog.String("channel_id", a.channelID))
		} else {
			slog.Error("ExtendChannelExpiry failed", slog.Any("err", err), slog.String("channel_id", a.channelID))
		}
		return model.TextReply(extendFailedText)
	}
	slog.Info("Channel extended", slog.String("channel", ch.String()))
	return &model.Reply{Text: extendedText, ReplaceOriginal: true}
}
