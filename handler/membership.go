package handler

import (
	"context"
	"log/slog"

	"github.com/svmhdvn/private-channel-bot/domain/infra"
	"github.com/svmhdvn/private-channel-bot/domain/model"
)

// restoreChannel unarchives the channel and marks its block restored. Any
// failure is reported without touching the listing.
func (h *Handler) restoreChannel(ctx context.Context, a restoreChannelAction) *model.Reply {
	if err := h.admin.UnArchiveConversationContext(ctx, a.channelID); err != nil {
		countPlatformError(err)
		slog.Error("UnArchiveConversation failed", slog.Any("err", err), slog.String("channel_id", a.channelID))
		return model.TextReply(model.FatalPlatformError)
	}
	h.channelCache.Delete(managedChannelsKey)
	return model.ResolveBlock(a.message, a.channelID, (*model.ChannelBlock).Restore)
}

func (h *Handler) joinChannel(ctx context.Context, a joinChannelAction) *model.Reply {
	if _, err := h.admin.InviteUsersToConversationContext(ctx, a.channelID, a.userID); err != nil {
		return membershipFailed("InviteUsersToConversation", a.channelID, err, infra.ErrCodeChannelNotFound, infra.ErrCodeIsArchived)
	}
	return model.ResolveBlock(a.message, a.channelID, (*model.ChannelBlock).Join)
}

func (h *Handler) archiveChannel(ctx context.Context, a archiveChannelAction) *model.Reply {
	if err := h.admin.ArchiveConversationContext(ctx, a.channelID); err != nil {
		return membershipFailed("ArchiveConversation", a.channelID, err, infra.ErrCodeChannelNotFound, infra.ErrCodeAlreadyArchived)
	}
	h.channelCache.Delete(managedChannelsKey)
	return model.ResolveBlock(a.message, a.channelID, (*model.ChannelBlock).Archive)
}

// inactive に当たるコードならチャンネル一覧の更新を促す。それ以外は fatal
func membershipFailed(op, channelID string, err error, inactive ...string) *model.Reply {
	countPlatformError(err)
	if code, ok := infra.PlatformErrorCode(err); ok {
		for _, c := range inactive {
			if code == c {
				return model.TextReply(model.InactiveChannelError)
			}
		}
	}
	slog.Error(op+" failed", slog.Any("err", err), slog.String("channel_id", channelID))
	return model.TextReply(model.FatalPlatformError)
}
