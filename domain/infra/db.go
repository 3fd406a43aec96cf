package infra

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/mattn/go-sqlite3"
	"github.com/svmhdvn/private-channel-bot/domain/model"
)

type DataBase struct {
	db *gorm.DB
}

func NewDataBase() (*DataBase, error) {
	dbpath := "./db/private_channel_bot.db"
	if os.Getenv("DB_PATH") != "" {
		dbpath = os.Getenv("DB_PATH")
	}
	if !path.IsAbs(dbpath) {
		dbpath = path.Join(os.Getenv("PWD"), dbpath)
	}
	if err := os.MkdirAll(path.Dir(dbpath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}
	db, err := gorm.Open("sqlite3", dbpath)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Channel{}).Error; err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return &DataBase{db: db}, nil
}

func (d *DataBase) Close() error {
	return d.db.Close()
}

func (d *DataBase) SaveChannel(_ context.Context, ch *model.Channel) error {
	err := d.db.Create(ch).Error
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %s", ErrChannelExists, ch.ID)
	}
	return err
}

func (d *DataBase) GetChannels(_ context.Context) ([]model.Channel, error) {
	var channels []model.Channel
	err := d.db.Order("ts_created asc").Find(&channels).Error
	return channels, err
}

func (d *DataBase) ExtendChannelExpiry(_ context.Context, id string, by time.Duration) (*model.Channel, error) {
	res := d.db.Model(&model.Channel{}).
		Where("id = ?", id).
		UpdateColumn("ts_expiry", gorm.Expr("ts_expiry + ?", int64(by/time.Second)))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, id)
	}

	var ch model.Channel
	if err := d.db.Where("id = ?", id).First(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

func (d *DataBase) RemoveChannels(_ context.Context, channels []model.Channel) ([]model.Channel, error) {
	tx := d.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var removed []model.Channel
	for _, ch := range channels {
		// 読み取った後に延長されたものは消さない
		res := tx.Where("id = ? AND ts_expiry = ?", ch.ID, ch.Expires).Delete(&model.Channel{})
		if res.Error != nil {
			tx.Rollback()
			return nil, res.Error
		}
		if res.RowsAffected > 0 {
			removed = append(removed, ch)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return removed, nil
}
