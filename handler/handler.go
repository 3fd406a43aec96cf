package handler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"github.com/svmhdvn/private-channel-bot/domain/infra"
	"github.com/svmhdvn/private-channel-bot/domain/model"
)

const (
	managedChannelsKey = "managed_channels"
	cmdList            = "list"
)

var mentionPattern = regexp.MustCompile(`<@[A-Z0-9]+>`)

type Handler struct {
	// client は bot token。ユーザー情報、メッセージ、ダイアログに使う
	client infra.SlackAPI
	// admin は user token。チャンネルの作成・招待・アーカイブに使う
	admin         infra.SlackAPI
	responder     infra.Responder
	ds            infra.Datastore
	userInfoCache *ttlcache.Cache[string, *slack.User]
	channelCache  *ttlcache.Cache[string, []slack.Channel]
	allowedUsers  map[string]bool
	now           func() time.Time

	mu          sync.Mutex
	adminUserID string
}

func NewHandler() (*Handler, error) {
	ds, err := infra.NewDatastore()
	if err != nil {
		return nil, err
	}

	bot := slack.New(os.Getenv("SLACK_BOT_TOKEN"))
	admin := bot
	if os.Getenv("SLACK_USER_TOKEN") != "" {
		admin = slack.New(os.Getenv("SLACK_USER_TOKEN"))
	}

	h := newHandler(bot, admin, infra.NewResponder(), ds)
	for _, id := range parseCSV(os.Getenv("ALLOWED_USERS")) {
		h.allowedUsers[id] = true
	}
	go h.userInfoCache.Start()
	go h.channelCache.Start()
	return h, nil
}

func newHandler(client, admin infra.SlackAPI, responder infra.Responder, ds infra.Datastore) *Handler {
	return &Handler{
		client:        client,
		admin:         admin,
		responder:     responder,
		ds:            ds,
		userInfoCache: ttlcache.New(ttlcache.WithTTL[string, *slack.User](24 * time.Hour)),
		channelCache:  ttlcache.New(ttlcache.WithTTL[string, []slack.Channel](time.Minute)),
		allowedUsers:  map[string]bool{},
		now:           time.Now,
	}
}

// Handle runs the Socket Mode connection until ctx is cancelled.
func (h *Handler) Handle(ctx context.Context) error {
	webApi := slack.New(
		os.Getenv("SLACK_BOT_TOKEN"),
		slack.OptionAppLevelToken(os.Getenv("SLACK_APP_TOKEN")),
	)
	socketMode := socketmode.New(
		webApi,
	)
	if _, err := webApi.AuthTestContext(ctx); err != nil {
		return fmt.Errorf("SLACK_BOT_TOKEN is invalid: %w", err)
	}

	go func() {
		for envelope := range socketMode.Events {
			switch envelope.Type {
			case socketmode.EventTypeEventsAPI:
				socketMode.Ack(*envelope.Request)
				eventPayload, ok := envelope.Data.(slackevents.EventsAPIEvent)
				if !ok {
					slog.Error("Failed to cast to EventsAPIEvent")
					continue
				}
				go h.handleCallBack(ctx, &eventPayload)
			case socketmode.EventTypeInteractive:
				callback, ok := envelope.Data.(slack.InteractionCallback)
				if !ok {
					socketMode.Ack(*envelope.Request)
					slog.Error("Failed to cast to InteractionCallback")
					continue
				}
				go func(req socketmode.Request) {
					reply := h.dispatch(ctx, &callback)
					if reply.HasErrors() {
						// ダイアログのエラーは ack で返す
						socketMode.Ack(req, reply.DialogErrors(model.FieldChannelName))
						return
					}
					socketMode.Ack(req)
					h.deliver(ctx, callback.ResponseURL, reply)
				}(*envelope.Request)
			default:
				socketMode.Debugf("Skipped: %v", envelope.Type)
			}
		}
	}()

	return socketMode.RunContext(ctx)
}

// deliver posts a reply to the interaction's response_url.
func (h *Handler) deliver(ctx context.Context, responseURL string, reply *model.Reply) {
	if reply == nil {
		return
	}
	if responseURL == "" {
		slog.Warn("No response_url to deliver reply", slog.String("text", reply.Text))
		return
	}
	if err := h.responder.Respond(ctx, responseURL, reply.WebhookMessage()); err != nil {
		slog.Error("Respond failed", slog.Any("err", err))
	}
}

func (h *Handler) handleCallBack(ctx context.Context, event *slackevents.EventsAPIEvent) {
	switch event.Type {
	case slackevents.CallbackEvent:
		switch ev := event.InnerEvent.Data.(type) {
		case *slackevents.AppMentionEvent:
			h.handleMention(ctx, ev)
		}
	default:
		slog.Warn("Unsupported EventsAPIEvent type", slog.Any("type", event.Type))
	}
}

// メンションされたらメニューを出す。"list <検索語>" なら一覧を直接出す
func (h *Handler) handleMention(ctx context.Context, event *slackevents.AppMentionEvent) {
	text := strings.TrimSpace(mentionPattern.ReplaceAllString(event.Text, ""))
	if fields := strings.Fields(text); len(fields) > 0 && fields[0] == cmdList {
		reply := h.listChannels(ctx, 0, strings.Join(fields[1:], " "))
		if _, err := h.client.PostEphemeralContext(ctx, event.Channel, event.User,
			slack.MsgOptionText(reply.Text, false),
			slack.MsgOptionAttachments(reply.Attachments...),
		); err != nil {
			slog.Error("Failed to post channel list", slog.Any("err", err))
		}
		return
	}

	if _, err := h.client.PostEphemeralContext(ctx, event.Channel, event.User,
		slack.MsgOptionText("What would you like to do?", false),
		slack.MsgOptionAttachments(menuAttachment()),
	); err != nil {
		slog.Error("Failed to post menu", slog.Any("err", err))
	}
}

func menuAttachment() slack.Attachment {
	return slack.Attachment{
		CallbackID: callbackMenu,
		Fallback:   "You are unable to choose an option.",
		Actions: []slack.AttachmentAction{
			{Name: actionRequestChannel, Text: "Request a private channel", Type: "button", Style: "primary"},
			{Name: actionListChannels, Text: "List private channels", Type: "button", Value: listCursor(0, "")},
		},
	}
}

func (h *Handler) getUserInfo(ctx context.Context, userID string) (*slack.User, error) {
	cacheKey := "user_" + userID
	if user := h.userInfoCache.Get(cacheKey); user != nil {
		return user.Value(), nil
	}
	user, err := h.client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, err
	}
	h.userInfoCache.Set(cacheKey, user, ttlcache.DefaultTTL)
	return user, nil
}

// チャンネル管理を依頼できるのはワークスペース管理者か ALLOWED_USERS のみ
func (h *Handler) isUserAuthorized(ctx context.Context, userID string) bool {
	if h.allowedUsers[userID] {
		return true
	}
	user, err := h.getUserInfo(ctx, userID)
	if err != nil {
		slog.Error("GetUserInfo failed", slog.Any("err", err), slog.String("user", userID))
		return false
	}
	return user.IsAdmin || user.IsOwner
}

// getAdminUserID は user token の持ち主。bot が作ったチャンネルの creator になる
func (h *Handler) getAdminUserID(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.adminUserID == "" {
		authResp, err := h.admin.AuthTestContext(ctx)
		if err != nil {
			return "", fmt.Errorf("AuthTest failed: %w", err)
		}
		slog.Info("Admin user ID", slog.String("id", authResp.UserID))
		h.adminUserID = authResp.UserID
	}
	return h.adminUserID, nil
}

func parseCSV(csv string) []string {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
