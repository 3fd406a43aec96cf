package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/svmhdvn/private-channel-bot/domain/infra"
	"github.com/svmhdvn/private-channel-bot/domain/model"
	"golang.org/x/sync/errgroup"
)

const (
	requestingText    = ":building_construction: Requesting private channel..."
	botInviteeError   = "Invited user must be human."
	nameTakenError    = "This channel name is already taken."
	restrictedMessage = "You are not allowed to request private channels in this Slack workspace, please contact the administrators."
)

func (h *Handler) requestChannel(ctx context.Context, a requestChannelAction) *model.Reply {
	if err := h.openChannelRequestDialog(ctx, a.triggerID, ""); err != nil {
		slog.Error("OpenDialog failed", slog.Any("err", err))
		return model.TextReply(model.FatalPlatformError)
	}
	return &model.Reply{Text: requestingText, ReplaceOriginal: true}
}

// メッセージアクションからの依頼。投稿者を招待先の初期値にする
func (h *Handler) requestChannelFromMessage(ctx context.Context, a messageRequestAction) *model.Reply {
	if !h.isUserAuthorized(ctx, a.userID) {
		slog.Warn("Unauthorized channel request", slog.String("user", a.userID))
		return nil
	}
	if err := h.openChannelRequestDialog(ctx, a.triggerID, a.author); err != nil {
		slog.Error("OpenDialog failed", slog.Any("err", err))
	}
	return nil
}

func (h *Handler) openChannelRequestDialog(ctx context.Context, triggerID, defaultInvitee string) error {
	if err := h.client.OpenDialogContext(ctx, triggerID, channelRequestDialog(defaultInvitee)); err != nil {
		return fmt.Errorf("OpenDialog failed: %w", err)
	}
	return nil
}

func channelRequestDialog(defaultInvitee string) slack.Dialog {
	name := slack.NewTextInput(model.FieldChannelName, "Channel name", "")
	name.MaxLength = 21
	name.Hint = "Lowercase letters, numbers, hyphens and underscores only."

	invitee := slack.NewUsersSelect(model.FieldInvitee, "Invitee")
	invitee.Value = defaultInvitee

	org := slack.NewTextInput(model.FieldOrganization, "Organization", "")
	org.Optional = true

	days := slack.NewTextInput(model.FieldExpireDays, "Expire in (days)", "30")
	days.Hint = "The channel is archived after this many days unless extended."

	purpose := slack.NewTextAreaInput(model.FieldPurpose, "Purpose", "")
	purpose.Optional = true

	return slack.Dialog{
		CallbackID:  callbackRequestDialog,
		Title:       "Request a private channel",
		SubmitLabel: "Request",
		Elements:    []slack.DialogElement{name, invitee, org, days, purpose},
	}
}

// submitChannelRequest creates, provisions and records the channel. Field
// errors go back to the dialog; success is announced on the response_url and
// nothing is returned.
func (h *Handler) submitChannelRequest(ctx context.Context, a submitChannelRequestAction) *model.Reply {
	req := a.request
	if errs := req.Validate(); len(errs) > 0 {
		return model.ErrorsReply(errs...)
	}
	if reply := h.ensureHuman(ctx, req.Invitee); reply != nil {
		return reply
	}

	created, err := h.admin.CreateConversationContext(ctx, slack.CreateConversationParams{
		ChannelName: req.ChannelName,
		IsPrivate:   true,
	})
	if err != nil {
		return createFailed(req, err)
	}

	// Slack が返した名前を正とする
	ch := model.NewChannel(created.ID, created.Name, req.Invitee, req.Organization, req.Purpose,
		int64(created.Created), req.Days())
	if err := h.provisionChannel(ctx, req, ch); err != nil {
		// 作成済みのチャンネルは残る。運用者が手で片付ける
		slog.Error("Provision channel failed",
			slog.Any("err", err),
			slog.String("channel_id", ch.ID),
			slog.String("channel_name", ch.Name),
		)
		return model.FatalErrorsReply()
	}
	slog.Info("Channel created", slog.String("channel", ch.String()), slog.String("requester", req.RequesterID))

	h.channelCache.Delete(managedChannelsKey)
	h.deliver(ctx, a.responseURL, model.TextReply(createdMessage(ch)))
	return nil
}

// 招待先が bot ならエラー
func (h *Handler) ensureHuman(ctx context.Context, userID string) *model.Reply {
	user, err := h.getUserInfo(ctx, userID)
	if err != nil {
		slog.Error("GetUserInfo failed", slog.Any("err", err), slog.String("user", userID))
		countPlatformError(err)
		return model.FatalErrorsReply()
	}
	if user.IsBot || user.IsAppUser {
		return model.ErrorsReply(model.FieldError{Field: model.FieldInvitee, Message: botInviteeError})
	}
	return nil
}

func createFailed(req *model.ChannelRequest, err error) *model.Reply {
	countPlatformError(err)
	code, _ := infra.PlatformErrorCode(err)
	switch code {
	case infra.ErrCodeNameTaken:
		return model.ErrorsReply(model.FieldError{Field: model.FieldChannelName, Message: nameTakenError})
	case infra.ErrCodeRestrictedAction:
		return model.ErrorsReply(model.FieldError{Field: model.FieldChannelName, Message: restrictedMessage})
	}
	slog.Error("CreateConversation failed", slog.Any("err", err), slog.String("channel_name", req.ChannelName))
	return model.FatalErrorsReply()
}

// provisionChannel runs the post-create steps concurrently. The first failure
// is returned once every step has finished.
func (h *Handler) provisionChannel(ctx context.Context, req *model.ChannelRequest, ch *model.Channel) error {
	invitees, err := h.invitees(ctx, req)
	if err != nil {
		return err
	}

	var eg errgroup.Group
	eg.Go(func() error {
		if _, err := h.admin.InviteUsersToConversationContext(ctx, ch.ID, invitees...); err != nil {
			countPlatformError(err)
			return fmt.Errorf("InviteUsersToConversation failed: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if _, err := h.admin.SetTopicOfConversationContext(ctx, ch.ID, ch.Topic); err != nil {
			countPlatformError(err)
			return fmt.Errorf("SetTopicOfConversation failed: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if _, err := h.admin.SetPurposeOfConversationContext(ctx, ch.ID, ch.Purpose); err != nil {
			countPlatformError(err)
			return fmt.Errorf("SetPurposeOfConversation failed: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := h.ds.SaveChannel(ctx, ch); err != nil {
			return fmt.Errorf("SaveChannel failed: %w", err)
		}
		return nil
	})
	return eg.Wait()
}

// チャンネルの作成者は自動的にメンバーなので招待しない
func (h *Handler) invitees(ctx context.Context, req *model.ChannelRequest) ([]string, error) {
	adminID, err := h.getAdminUserID(ctx)
	if err != nil {
		return nil, err
	}
	var users []string
	for _, id := range []string{req.RequesterID, req.Invitee} {
		if id != adminID {
			users = append(users, id)
		}
	}
	return users, nil
}

func createdMessage(ch *model.Channel) string {
	msg := fmt.Sprintf(":white_check_mark: Successfully created private channel #%s for <@%s>", ch.Name, ch.OwnerUserID)
	if ch.Organization != "" {
		msg += " from " + ch.Organization
	}
	return msg + "!"
}
