package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"podium/contexts/live-competition/leaderboard-service/domain/entities"
	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
	"podium/contexts/live-competition/leaderboard-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository archives finalized campaign results. It is reporting-side
// bookkeeping only: the live ranking state never touches the database, so a
// restart starts from an empty registry by design.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) ArchiveResult(ctx context.Context, record ports.ResultRecord) error {
	row := resultModelFromRecord(record)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campaign_id"}},
			DoNothing: true,
		}).
		Create(&row).
		Error
	if err != nil && isUniqueViolation(err) {
		// Sweep retried concurrently; first writer wins.
		return nil
	}
	return err
}

func (r *Repository) UpdateRewardStatus(ctx context.Context, campaignID string, status entities.RewardStatus) error {
	result := r.db.WithContext(ctx).
		Model(&campaignResultModel{}).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Updates(map[string]any{
			"reward_status": string(status),
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

type campaignResultModel struct {
	CampaignID   string    `gorm:"column:campaign_id;primaryKey"`
	GameID       string    `gorm:"column:game_id"`
	CampaignName string    `gorm:"column:campaign_name"`
	CampaignType string    `gorm:"column:campaign_type"`
	WinnerID     string    `gorm:"column:winner_id"`
	WinnerScore  int       `gorm:"column:winner_score"`
	EntryCount   int       `gorm:"column:entry_count"`
	ExpiredAt    int64     `gorm:"column:expired_at"`
	RewardStatus string    `gorm:"column:reward_status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (campaignResultModel) TableName() string {
	return "campaign_results"
}

func resultModelFromRecord(record ports.ResultRecord) campaignResultModel {
	now := time.Now().UTC()
	return campaignResultModel{
		CampaignID:   strings.TrimSpace(record.CampaignID),
		GameID:       strings.TrimSpace(record.GameID),
		CampaignName: record.CampaignName,
		CampaignType: string(record.CampaignType),
		WinnerID:     record.WinnerID,
		WinnerScore:  record.WinnerScore,
		EntryCount:   record.EntryCount,
		ExpiredAt:    record.ExpiredAt,
		RewardStatus: string(record.RewardStatus),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
