package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/slack-go/slack"
	"github.com/svmhdvn/private-channel-bot/domain/model"
)

const warnText = "Looks like this channel will _expire within a week_, would you like to *extend it for one more week*?"

type channelState int

const (
	stateActive channelState = iota
	stateWarn
	stateExpired
)

func (s channelState) String() string {
	switch s {
	case stateWarn:
		return "warn"
	case stateExpired:
		return "expired"
	}
	return "active"
}

// classifyChannel は now (epoch 秒) 時点のチャンネルの状態を返す
func classifyChannel(now int64, ch model.Channel) channelState {
	switch {
	case now >= ch.Expires:
		return stateExpired
	case now >= ch.WarnFrom():
		return stateWarn
	}
	return stateActive
}

// StartExpiryMonitor sweeps once right away and then at the top of every
// hour until ctx is done.
func (h *Handler) StartExpiryMonitor(ctx context.Context) {
	go func() {
		for {
			h.sweepChannels(ctx)

			now := h.now()
			next := now.Truncate(time.Hour).Add(time.Hour)
			slog.Info("Next expiry sweep", slog.Any("next", next))
			select {
			case <-ctx.Done():
				slog.Info("Expiry monitor stopped")
				return
			case <-time.After(next.Sub(now)):
			}
		}
	}()
}

// sweepChannels warns channels about to expire, drops expired ones from the
// store and archives whatever was actually dropped.
func (h *Handler) sweepChannels(ctx context.Context) {
	runID := uuid.NewString()
	start := time.Now()
	defer func() { sweepDuration.Observe(time.Since(start).Seconds()) }()

	channels, err := h.ds.GetChannels(ctx)
	if err != nil {
		slog.Error("GetChannels failed", slog.Any("err", err), slog.String("run_id", runID))
		return
	}

	now := h.now().Unix()
	var expired []model.Channel
	counts := map[channelState]int{}
	for _, ch := range channels {
		state := classifyChannel(now, ch)
		counts[state]++
		sweepChannelsTotal.WithLabelValues(state.String()).Inc()
		switch state {
		case stateWarn:
			h.warnExpiry(ctx, ch)
		case stateExpired:
			expired = append(expired, ch)
		}
	}
	slog.Info("Expiry sweep",
		slog.String("run_id", runID),
		slog.Int("active", counts[stateActive]),
		slog.Int("warn", counts[stateWarn]),
		slog.Int("expired", counts[stateExpired]),
	)
	if len(expired) == 0 {
		return
	}

	// 失敗しても削除できた分はアーカイブする
	removed, err := h.ds.RemoveChannels(ctx, expired)
	if err != nil {
		slog.Error("RemoveChannels failed", slog.Any("err", err), slog.String("run_id", runID))
	} else if len(removed) < len(expired) {
		slog.Info("Renewed during sweep", slog.String("run_id", runID), slog.Int("kept", len(expired)-len(removed)))
	}
	for _, ch := range removed {
		if err := h.admin.ArchiveConversationContext(ctx, ch.ID); err != nil {
			countPlatformError(err)
			archiveFailuresTotal.Inc()
			slog.Error("ArchiveConversation failed", slog.Any("err", err), slog.String("channel", ch.String()), slog.String("run_id", runID))
			continue
		}
		slog.Info("Channel expired", slog.String("channel", ch.String()), slog.String("run_id", runID))
	}
	h.channelCache.Delete(managedChannelsKey)
}

func (h *Handler) warnExpiry(ctx context.Context, ch model.Channel) {
	if _, _, err := h.admin.PostMessageContext(ctx, ch.ID,
		slack.MsgOptionAttachments(extendAttachment()),
	); err != nil {
		countPlatformError(err)
		slog.Error("Failed to post expiry warning", slog.Any("err", err), slog.String("channel", ch.String()))
	}
}

func extendAttachment() slack.Attachment {
	return slack.Attachment{
		Text:       warnText,
		CallbackID: callbackExtend,
		Fallback:   "You are unable to extend this channel.",
		Actions: []slack.AttachmentAction{
			{Name: actionExtend, Text: "Yes", Type: "button", Style: "primary"},
			{Name: actionDecline, Text: "No", Type: "button"},
		},
	}
}
