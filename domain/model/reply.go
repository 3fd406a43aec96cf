package model

import "github.com/slack-go/slack"

const (
	FatalPlatformError   = "Fatal: unknown platform error"
	InactiveChannelError = "Oops, looks like this channel is already inactive. Please refresh the channel list."
)

// Reply is what an interaction answers with. A nil *Reply means no visible
// response at all.
type Reply struct {
	Text            string
	Attachments     []slack.Attachment
	ReplaceOriginal bool
	// Errors are dialog validation errors; they are acknowledged to the
	// dialog instead of being posted as a message.
	Errors []FieldError
}

func TextReply(text string) *Reply {
	return &Reply{Text: text}
}

func ErrorsReply(errs ...FieldError) *Reply {
	return &Reply{Errors: errs}
}

func FatalErrorsReply() *Reply {
	return ErrorsReply(FieldError{Message: FatalPlatformError})
}

func (r *Reply) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// WebhookMessage renders the reply for a response_url.
func (r *Reply) WebhookMessage() *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Text:            r.Text,
		Attachments:     r.Attachments,
		ReplaceOriginal: r.ReplaceOriginal,
	}
}

// DialogErrors renders validation errors for the dialog acknowledgement.
// Slack can only show errors under a field, so field-less ones go under
// fallbackField.
func (r *Reply) DialogErrors(fallbackField string) slack.DialogInputValidationErrors {
	var out slack.DialogInputValidationErrors
	for _, e := range r.Errors {
		name := e.Field
		if name == "" {
			name = fallbackField
		}
		out.Errors = append(out.Errors, slack.DialogInputValidationError{Name: name, Error: e.Message})
	}
	return out
}

// ResolveBlock finds the attachment whose first button targets channelID,
// applies transition to it and returns a copy of msg reflecting the change.
// It returns nil when no such attachment exists or the transition is refused.
func ResolveBlock(msg slack.Message, channelID string, transition func(*ChannelBlock) error) *Reply {
	for i, a := range msg.Attachments {
		if len(a.Actions) == 0 || a.Actions[0].Value != channelID {
			continue
		}
		b := DecodeBlock(a)
		if err := transition(&b); err != nil {
			return nil
		}
		attachments := append([]slack.Attachment(nil), msg.Attachments...)
		attachments[i] = b.Attachment()
		return &Reply{
			Text:            msg.Text,
			Attachments:     attachments,
			ReplaceOriginal: true,
		}
	}
	return nil
}
