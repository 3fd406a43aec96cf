package handler

import (
	"context"

	"github.com/slack-go/slack"
	"github.com/svmhdvn/private-channel-bot/domain/model"
)

// dispatch answers one interaction. A nil reply means nothing is shown.
func (h *Handler) dispatch(ctx context.Context, cb *slack.InteractionCallback) *model.Reply {
	if !auditLog(cb) {
		return nil
	}

	act := decodeAction(cb)
	if act == nil {
		return nil
	}
	actionsTotal.WithLabelValues(cb.CallbackID, actionLabel(cb)).Inc()

	switch a := act.(type) {
	case requestChannelAction:
		return h.requestChannel(ctx, a)
	case messageRequestAction:
		return h.requestChannelFromMessage(ctx, a)
	case submitChannelRequestAction:
		return h.submitChannelRequest(ctx, a)
	case listChannelsAction:
		return h.listChannels(ctx, a.offset, a.searchTerms)
	case restoreChannelAction:
		return h.restoreChannel(ctx, a)
	case joinChannelAction:
		return h.joinChannel(ctx, a)
	case archiveChannelAction:
		return h.archiveChannel(ctx, a)
	case extendChannelAction:
		return h.extendChannel(ctx, a)
	}
	return nil
}

func actionLabel(cb *slack.InteractionCallback) string {
	if first := firstAction(cb); first != nil {
		return first.Name
	}
	return string(cb.Type)
}
