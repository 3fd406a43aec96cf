package infra

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/svmhdvn/private-channel-bot/domain/model"
)

//go:generate mockgen -source=datastore.go -destination=../../handler/mock_datastore_test.go -package=handler

var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrChannelExists   = errors.New("channel already exists")
)

type Datastore interface {
	// チャンネルを登録する。ID が重複していればエラー
	SaveChannel(context.Context, *model.Channel) error
	// 追跡中のチャンネルをすべて取得する
	GetChannels(context.Context) ([]model.Channel, error)
	// 有効期限を by だけ延ばす。延長後のチャンネルを返す
	ExtendChannelExpiry(ctx context.Context, id string, by time.Duration) (*model.Channel, error)
	// 期限切れのチャンネルを削除する。読み取った後に期限が変わったものは残す
	RemoveChannels(context.Context, []model.Channel) ([]model.Channel, error)
}

// NewDatastore picks the backend from DB_DRIVER.
func NewDatastore() (Datastore, error) {
	if os.Getenv("DB_DRIVER") == "dynamodb" {
		d, err := NewDynamoDB()
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	d, err := NewDataBase()
	if err != nil {
		return nil, err
	}
	return d, nil
}
