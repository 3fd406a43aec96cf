package handler

import (
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/svmhdvn/private-channel-bot/domain/model"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	callbackMenu           = "menu_button"
	callbackUnarchive      = "unarchive_channel_button"
	callbackJoin           = "join_channel_button"
	callbackExtend         = "extend_button"
	callbackRequestDialog  = "channel_request_dialog"
	callbackRequestMessage = "request_channel_action"
)

const (
	actionRequestChannel = "request_private_channel"
	actionListChannels   = "list_private_channels"
	actionRestore        = "restore_channel"
	actionJoin           = "join_channel"
	actionArchive        = "archive_channel"
	actionExtend         = "extend"
	actionDecline        = "no"
)

// action is one decoded interaction. Each implementation carries only what
// its handler needs.
type action interface {
	isAction()
}

type requestChannelAction struct {
	triggerID string
}

type listChannelsAction struct {
	offset      int
	searchTerms string
}

type restoreChannelAction struct {
	channelID string
	message   slack.Message
}

type joinChannelAction struct {
	channelID string
	userID    string
	message   slack.Message
}

type archiveChannelAction struct {
	channelID string
	message   slack.Message
}

type extendChannelAction struct {
	channelID string
}

type submitChannelRequestAction struct {
	request     *model.ChannelRequest
	responseURL string
}

type messageRequestAction struct {
	userID    string
	triggerID string
	author    string
}

func (requestChannelAction) isAction()       {}
func (listChannelsAction) isAction()         {}
func (restoreChannelAction) isAction()       {}
func (joinChannelAction) isAction()          {}
func (archiveChannelAction) isAction()       {}
func (extendChannelAction) isAction()        {}
func (submitChannelRequestAction) isAction() {}
func (messageRequestAction) isAction()       {}

// decodeAction returns nil for any (callback, action) pair the bot does not
// act on.
func decodeAction(cb *slack.InteractionCallback) action {
	switch cb.CallbackID {
	case callbackRequestDialog:
		if cb.Type != slack.InteractionTypeDialogSubmission {
			return nil
		}
		return submitChannelRequestAction{
			request:     model.NewChannelRequest(cb.User.ID, cb.Submission),
			responseURL: cb.ResponseURL,
		}
	case callbackRequestMessage:
		return messageRequestAction{
			userID:    cb.User.ID,
			triggerID: cb.TriggerID,
			author:    cb.Message.User,
		}
	}

	first := firstAction(cb)
	if first == nil {
		return nil
	}
	switch cb.CallbackID {
	case callbackMenu:
		switch first.Name {
		case actionRequestChannel:
			return requestChannelAction{triggerID: cb.TriggerID}
		case actionListChannels:
			offset, terms := parseListCursor(first.Value)
			return listChannelsAction{offset: offset, searchTerms: terms}
		}
	case callbackUnarchive:
		if first.Name == actionRestore {
			return restoreChannelAction{channelID: first.Value, message: cb.OriginalMessage}
		}
	case callbackJoin:
		switch first.Name {
		case actionJoin:
			return joinChannelAction{channelID: first.Value, userID: cb.User.ID, message: cb.OriginalMessage}
		case actionArchive:
			return archiveChannelAction{channelID: first.Value, message: cb.OriginalMessage}
		}
	case callbackExtend:
		if first.Name == actionExtend {
			return extendChannelAction{channelID: cb.Channel.ID}
		}
	}
	return nil
}

func firstAction(cb *slack.InteractionCallback) *slack.AttachmentAction {
	if len(cb.ActionCallback.AttachmentActions) == 0 {
		return nil
	}
	return cb.ActionCallback.AttachmentActions[0]
}

// auditLog records every interaction on a known callback before anything
// else happens. It reports whether the callback is known.
func auditLog(cb *slack.InteractionCallback) bool {
	var kind string
	var act any
	switch cb.CallbackID {
	case callbackMenu, callbackUnarchive, callbackJoin, callbackExtend:
		kind = "button"
		if first := firstAction(cb); first != nil {
			act = first
		}
	case callbackRequestDialog:
		kind = "dialog_submission"
		act = cb.Submission
	case callbackRequestMessage:
		kind = "message_action"
		act = cb.Message.Text
	default:
		slog.Warn("Unknown callback", slog.String("callback_id", cb.CallbackID), slog.String("user_id", cb.User.ID))
		return false
	}

	slog.Info("Interaction",
		slog.String("user_id", cb.User.ID),
		slog.String("type", kind),
		slog.String("callback_id", cb.CallbackID),
		slog.Any("action", act),
	)
	return true
}

// list ボタンの value は {"offset":0,"searchTerms":""}
func parseListCursor(value string) (int, string) {
	if !gjson.Valid(value) {
		return 0, ""
	}
	v := gjson.Parse(value)
	offset := int(v.Get("offset").Int())
	if offset < 0 {
		offset = 0
	}
	return offset, v.Get("searchTerms").String()
}

func listCursor(offset int, searchTerms string) string {
	value, _ := sjson.Set(`{}`, "offset", offset)
	value, _ = sjson.Set(value, "searchTerms", searchTerms)
	return value
}
