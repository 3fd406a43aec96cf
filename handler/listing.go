package handler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jellydator/ttlcache/v3"
	"github.com/slack-go/slack"
	"github.com/svmhdvn/private-channel-bot/domain/model"
)

const listPageSize = 10

// listChannels shows one page of the channels this bot administers, filtered
// by a substring of the name.
func (h *Handler) listChannels(ctx context.Context, offset int, searchTerms string) *model.Reply {
	channels, err := h.getManagedChannels(ctx)
	if err != nil {
		slog.Error("Failed to list channels", slog.Any("err", err))
		return model.TextReply(model.FatalPlatformError)
	}

	var matched []slack.Channel
	for _, ch := range channels {
		if searchTerms == "" || strings.Contains(ch.Name, strings.ToLower(searchTerms)) {
			matched = append(matched, ch)
		}
	}
	if len(matched) == 0 {
		return &model.Reply{Text: "No private channels found.", ReplaceOriginal: true}
	}
	if offset >= len(matched) {
		offset = (len(matched) - 1) / listPageSize * listPageSize
	}
	end := min(offset+listPageSize, len(matched))

	attachments := make([]slack.Attachment, 0, end-offset+1)
	for _, ch := range matched[offset:end] {
		attachments = append(attachments, channelAttachment(ch))
	}
	if nav, ok := listNavigation(offset, len(matched), searchTerms); ok {
		attachments = append(attachments, nav)
	}

	return &model.Reply{
		Text:            fmt.Sprintf("Private channels %d-%d of %d", offset+1, end, len(matched)),
		Attachments:     attachments,
		ReplaceOriginal: true,
	}
}

func channelAttachment(ch slack.Channel) slack.Attachment {
	text := "#" + ch.Name
	if ch.Purpose.Value != "" {
		text += "\n" + ch.Purpose.Value
	}

	if ch.IsArchived {
		return model.NewChannelBlock(callbackUnarchive, ch.ID, text,
			slack.AttachmentAction{Name: actionRestore, Text: "Restore", Type: "button"},
		).Attachment()
	}
	return model.NewChannelBlock(callbackJoin, ch.ID, text,
		slack.AttachmentAction{Name: actionJoin, Text: "Join", Type: "button", Style: "primary"},
		slack.AttachmentAction{
			Name:  actionArchive,
			Text:  "Archive",
			Type:  "button",
			Style: "danger",
			Confirm: &slack.ConfirmationField{
				Title:       "Archive #" + ch.Name + "?",
				Text:        "Members will no longer be able to post in this channel.",
				OkText:      "Archive",
				DismissText: "Cancel",
			},
		},
	).Attachment()
}

func listNavigation(offset, total int, searchTerms string) (slack.Attachment, bool) {
	var actions []slack.AttachmentAction
	if offset > 0 {
		actions = append(actions, slack.AttachmentAction{
			Name:  actionListChannels,
			Text:  "Previous",
			Type:  "button",
			Value: listCursor(max(offset-listPageSize, 0), searchTerms),
		})
	}
	if offset+listPageSize < total {
		actions = append(actions, slack.AttachmentAction{
			Name:  actionListChannels,
			Text:  "Next",
			Type:  "button",
			Value: listCursor(offset+listPageSize, searchTerms),
		})
	}
	if len(actions) == 0 {
		return slack.Attachment{}, false
	}
	return slack.Attachment{
		CallbackID: callbackMenu,
		Fallback:   "You are unable to page the channel list.",
		Actions:    actions,
	}, true
}

// getManagedChannels は admin ユーザーが作った private channel を名前順で返す
func (h *Handler) getManagedChannels(ctx context.Context) ([]slack.Channel, error) {
	if item := h.channelCache.Get(managedChannelsKey); item != nil {
		return item.Value(), nil
	}

	adminID, err := h.getAdminUserID(ctx)
	if err != nil {
		return nil, err
	}

	var channels []slack.Channel
	params := &slack.GetConversationsParameters{
		Types:           []string{"private_channel"},
		Limit:           200,
		ExcludeArchived: false,
	}
	for {
		page, cursor, err := h.admin.GetConversationsContext(ctx, params)
		if err != nil {
			countPlatformError(err)
			return nil, fmt.Errorf("GetConversations failed: %w", err)
		}
		for _, ch := range page {
			if ch.Creator == adminID {
				channels = append(channels, ch)
			}
		}
		if cursor == "" {
			break
		}
		params.Cursor = cursor
	}

	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].Name < channels[j].Name
	})
	h.channelCache.Set(managedChannelsKey, channels, ttlcache.DefaultTTL)
	return channels, nil
}
