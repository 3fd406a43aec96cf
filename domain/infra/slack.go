package infra

import (
	"context"
	"errors"

	"github.com/slack-go/slack"
)

//go:generate mockgen -source=slack.go -destination=../../handler/mock_slack_test.go -package=handler

// SlackAPI is the part of *slack.Client the bot uses.
type SlackAPI interface {
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
	CreateConversationContext(ctx context.Context, params slack.CreateConversationParams) (*slack.Channel, error)
	InviteUsersToConversationContext(ctx context.Context, channelID string, users ...string) (*slack.Channel, error)
	SetTopicOfConversationContext(ctx context.Context, channelID, topic string) (*slack.Channel, error)
	SetPurposeOfConversationContext(ctx context.Context, channelID, purpose string) (*slack.Channel, error)
	ArchiveConversationContext(ctx context.Context, channelID string) error
	UnArchiveConversationContext(ctx context.Context, channelID string) error
	GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	PostEphemeralContext(ctx context.Context, channelID, userID string, options ...slack.MsgOption) (string, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
	OpenDialogContext(ctx context.Context, triggerID string, dialog slack.Dialog) error
}

// Responder answers an interaction through its response_url.
type Responder interface {
	Respond(ctx context.Context, responseURL string, msg *slack.WebhookMessage) error
}

type webhookResponder struct{}

func NewResponder() Responder {
	return webhookResponder{}
}

func (webhookResponder) Respond(ctx context.Context, responseURL string, msg *slack.WebhookMessage) error {
	return slack.PostWebhookContext(ctx, responseURL, msg)
}

// Slack が返すエラーコード
const (
	ErrCodeNameTaken        = "name_taken"
	ErrCodeRestrictedAction = "restricted_action"
	ErrCodeChannelNotFound  = "channel_not_found"
	ErrCodeAlreadyArchived  = "already_archived"
	ErrCodeIsArchived       = "is_archived"
)

// PlatformErrorCode returns the error code Slack attached to err. ok is false
// for transport failures and anything else that carries no code.
func PlatformErrorCode(err error) (string, bool) {
	var resp slack.SlackErrorResponse
	if errors.As(err, &resp) && resp.Err != "" {
		return resp.Err, true
	}
	return "", false
}
