package model

import (
	"errors"

	"github.com/slack-go/slack"
)

// BlockStatus is the state of one channel attachment in a listing message.
// Pending blocks still carry their buttons; every other status is resolved.
type BlockStatus int

const (
	BlockPending BlockStatus = iota
	BlockJoined
	BlockRestored
	BlockArchived
)

const (
	colorSuccess = "good"
	colorWarning = "warning"
)

var ErrBlockResolved = errors.New("block is already resolved")

func (s BlockStatus) Resolved() bool {
	return s != BlockPending
}

// Color is the only place the status becomes visible, so it can be read back.
func (s BlockStatus) Color() string {
	switch s {
	case BlockJoined, BlockRestored:
		return colorSuccess
	case BlockArchived:
		return colorWarning
	}
	return ""
}

func (s BlockStatus) notice() string {
	switch s {
	case BlockJoined:
		return "\n:white_check_mark: You have been invited to this channel."
	case BlockRestored:
		return "\n:recycle: This channel is now restored."
	case BlockArchived:
		return "\n:file_folder: This channel is now archived."
	}
	return ""
}

func statusFromColor(color string) BlockStatus {
	switch color {
	case colorSuccess:
		return BlockJoined
	case colorWarning:
		return BlockArchived
	}
	return BlockPending
}

// ChannelBlock is one attachment of a message that acts on a single channel.
type ChannelBlock struct {
	ChannelID string
	Text      string
	Actions   []slack.AttachmentAction
	Status    BlockStatus

	base slack.Attachment
}

// NewChannelBlock builds a pending block whose buttons all target channelID.
func NewChannelBlock(callbackID, channelID, text string, actions ...slack.AttachmentAction) ChannelBlock {
	for i := range actions {
		actions[i].Value = channelID
	}
	return ChannelBlock{
		ChannelID: channelID,
		Text:      text,
		Actions:   actions,
		base: slack.Attachment{
			CallbackID: callbackID,
			Fallback:   text,
		},
	}
}

// DecodeBlock reads a block back from a rendered attachment. The channel is
// the value of the first button; blocks without buttons have no channel.
func DecodeBlock(a slack.Attachment) ChannelBlock {
	b := ChannelBlock{
		Text:    a.Text,
		Actions: append([]slack.AttachmentAction(nil), a.Actions...),
		Status:  statusFromColor(a.Color),
		base:    a,
	}
	if len(a.Actions) > 0 {
		b.ChannelID = a.Actions[0].Value
	}
	return b
}

func (b ChannelBlock) Attachment() slack.Attachment {
	a := b.base
	a.Text = b.Text
	a.Color = b.Status.Color()
	a.Actions = b.Actions
	return a
}

// Join drops the join button and keeps the rest (archive) available.
func (b *ChannelBlock) Join() error {
	if b.Status != BlockPending || len(b.Actions) == 0 {
		return ErrBlockResolved
	}
	b.Actions = b.Actions[1:]
	b.resolve(BlockJoined)
	return nil
}

func (b *ChannelBlock) Archive() error {
	if b.Status == BlockArchived || b.Status == BlockRestored || len(b.Actions) == 0 {
		return ErrBlockResolved
	}
	b.Actions = nil
	b.resolve(BlockArchived)
	return nil
}

func (b *ChannelBlock) Restore() error {
	if b.Status != BlockPending || len(b.Actions) == 0 {
		return ErrBlockResolved
	}
	b.Actions = nil
	b.resolve(BlockRestored)
	return nil
}

func (b *ChannelBlock) resolve(s BlockStatus) {
	b.Status = s
	b.Text += s.notice()
}
