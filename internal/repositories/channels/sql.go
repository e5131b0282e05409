package channels

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// ChannelSetting is one row of channel_settings
type ChannelSetting struct {
	ChannelID string `gorm:"primaryKey;size:32"`
	DiceSet   string `gorm:"size:32;not null"`
	UpdatedAt time.Time
}

func (ChannelSetting) TableName() string {
	return "channel_settings"
}

// Supported SQL drivers
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// OpenDB opens a GORM connection. dsn is a file path (or ":memory:") for
// sqlite and a go-sql-driver DSN for mysql.
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite, "":
		dialector = sqlite.Open(dsn)
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		return nil, boterr.InvalidArgumentf("unsupported settings database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, boterr.Wrapf(err, "failed to open %s database", driver)
	}
	return db, nil
}

type sqlRepo struct {
	db *gorm.DB
}

// NewSQLRepository migrates channel_settings and returns a repository on db
func NewSQLRepository(db *gorm.DB) (Repository, error) {
	if db == nil {
		return nil, boterr.InvalidArgument("database is required")
	}
	if err := db.AutoMigrate(&ChannelSetting{}); err != nil {
		return nil, boterr.Wrap(err, "failed to migrate channel_settings")
	}
	return &sqlRepo{db: db}, nil
}

func (r *sqlRepo) GetDiceSet(ctx context.Context, channelID string) (string, error) {
	if channelID == "" {
		return "", boterr.InvalidArgument("channel ID is required")
	}

	var row ChannelSetting
	err := r.db.WithContext(ctx).Where("channel_id = ?", channelID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", boterr.NotFoundf("no dice set for channel %s", channelID)
	}
	if err != nil {
		return "", boterr.Wrapf(err, "failed to read dice set for channel %s", channelID)
	}
	return row.DiceSet, nil
}

func (r *sqlRepo) SetDiceSet(ctx context.Context, channelID, diceSet string) error {
	if channelID == "" || diceSet == "" {
		return boterr.InvalidArgument("channel ID and dice set are required")
	}

	row := ChannelSetting{ChannelID: channelID, DiceSet: diceSet}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"dice_set", "updated_at"}),
	}).Create(&row)
	if result.Error != nil {
		return boterr.Wrapf(result.Error, "failed to store dice set for channel %s", channelID)
	}
	return nil
}

func (r *sqlRepo) List(ctx context.Context) (map[string]string, error) {
	var rows []ChannelSetting
	if err := r.db.WithContext(ctx).Order("channel_id").Find(&rows).Error; err != nil {
		return nil, boterr.Wrap(err, "failed to list channel dice sets")
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ChannelID] = row.DiceSet
	}
	return out, nil
}
