package model

import (
	"fmt"
	"math"
)

const (
	// SecondsPerDay is the unit expire days are counted in.
	SecondsPerDay int64 = 60 * 60 * 24
	// ExtendDays is how far a single extension pushes the expiry.
	ExtendDays = 7
	// MaxExpireDays keeps created + days*SecondsPerDay far inside int64,
	// with room left for extensions.
	MaxExpireDays = math.MaxInt32
)

// Channel は bot が作成して追跡している private channel
type Channel struct {
	ID           string `gorm:"type:varchar(50);primary_key" json:"id"`
	Name         string `gorm:"type:varchar(21)" json:"name"`
	OwnerUserID  string `gorm:"type:varchar(50)" json:"owner_user_id"` // 作成依頼された相手の Slack ユーザー ID
	Organization string `gorm:"type:text" json:"organization"`
	Purpose      string `gorm:"type:text" json:"purpose"`
	Topic        string `gorm:"type:text" json:"topic"`
	Created      int64  `gorm:"column:ts_created" json:"ts_created"` // epoch seconds, Slack の created
	Expires      int64  `gorm:"column:ts_expiry" json:"ts_expiry"`   // epoch seconds
}

func NewChannel(id, name, owner, organization, purpose string, created int64, expireDays int) *Channel {
	expireDays = min(expireDays, MaxExpireDays)
	return &Channel{
		ID:           id,
		Name:         name,
		OwnerUserID:  owner,
		Organization: organization,
		Purpose:      purpose,
		Topic:        ChannelTopic(owner, organization),
		Created:      created,
		Expires:      created + int64(expireDays)*SecondsPerDay,
	}
}

// ChannelTopic always names the owner, and the organization when known.
func ChannelTopic(owner, organization string) string {
	topic := fmt.Sprintf("Requested for <@%s>", owner)
	if organization != "" {
		topic += " from " + organization
	}
	return topic
}

// WarnFrom is the first instant the channel is within a week of expiring.
// Channels shorter than a week are in the warning window from creation.
func (c Channel) WarnFrom() int64 {
	return max(c.Expires-ExtendDays*SecondsPerDay, c.Created)
}

func (c Channel) String() string {
	return fmt.Sprintf("id:%s name:%s owner:%s created:%d expires:%d", c.ID, c.Name, c.OwnerUserID, c.Created, c.Expires)
}
