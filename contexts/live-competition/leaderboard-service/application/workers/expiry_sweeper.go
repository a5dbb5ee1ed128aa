package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	application "podium/contexts/live-competition/leaderboard-service/application"
	"podium/contexts/live-competition/leaderboard-service/domain/entities"
	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
	"podium/contexts/live-competition/leaderboard-service/ports"
)

// ExpiredTopic carries one envelope per finalized campaign.
const ExpiredTopic = "competition.campaign.expired"

type campaignExpiredPayload struct {
	CampaignID   string `json:"campaign_id"`
	GameID       string `json:"game_id"`
	WinnerID     string `json:"winner_id,omitempty"`
	WinnerScore  int    `json:"winner_score"`
	EntryCount   int    `json:"entry_count"`
	ExpiredAt    int64  `json:"expired_at"`
	RewardStatus string `json:"reward_status"`
}

// ExpirySweeper moves elapsed campaigns out of the accepting-scores state
// exactly once each and computes their results. It holds no timer of its
// own: callers schedule RunOnce, periodically or on demand, with identical
// correctness. Re-running is always safe; a sweep with nothing to expire is
// a normal no-op.
type ExpirySweeper struct {
	Registry    ports.CampaignRegistry
	Archive     ports.ResultArchive
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Compute     entities.ResultFunc
	Logger      *slog.Logger
}

func (j ExpirySweeper) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	now := time.Now().UTC()
	if j.Clock != nil {
		now = j.Clock.Now().UTC()
	}
	return j.sweep(ctx, now.Unix(), logger)
}

// SweepAt runs one sweep against an explicit timestamp. The synchronous
// facade trigger uses this so a caller can force expiry before reading a
// result.
func (j ExpirySweeper) SweepAt(ctx context.Context, at int64) (int, error) {
	if at < 0 {
		return 0, domainerrors.ErrInvalidTimestamp
	}
	logger := application.ResolveLogger(j.Logger)
	return j.sweepCount(ctx, at, logger)
}

func (j ExpirySweeper) sweep(ctx context.Context, at int64, logger *slog.Logger) error {
	_, err := j.sweepCount(ctx, at, logger)
	return err
}

func (j ExpirySweeper) sweepCount(ctx context.Context, at int64, logger *slog.Logger) (int, error) {
	elapsed, err := j.Registry.TakeElapsed(ctx, at)
	if err != nil {
		logger.Error("expiry sweep failed",
			"event", "campaign_expiry_sweep_failed",
			"module", "live-competition/leaderboard-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return 0, err
	}

	expired := 0
	for _, campaign := range elapsed {
		result, err := campaign.Expire(at, j.Compute)
		if errors.Is(err, domainerrors.ErrCampaignAlreadyExpired) {
			// TakeElapsed hands each campaign out once; this only trips
			// when a caller expired the campaign directly.
			continue
		}
		if err != nil {
			return expired, err
		}
		expired++

		j.archive(ctx, campaign, result, logger)
		j.publish(ctx, campaign, result, logger)

		logger.Info("campaign expired",
			"event", "campaign_expired",
			"module", "live-competition/leaderboard-service",
			"layer", "worker",
			"campaign_id", campaign.ID,
			"game_id", campaign.GameID,
			"winner_id", result.WinnerID,
			"winner_score", result.WinnerScore,
			"expired_at", result.ExpiredAt,
		)
	}

	if expired > 0 {
		logger.Info("expiry sweep completed",
			"event", "campaign_expiry_sweep_completed",
			"module", "live-competition/leaderboard-service",
			"layer", "worker",
			"expired_count", expired,
		)
	}
	return expired, nil
}

func (j ExpirySweeper) archive(ctx context.Context, campaign *entities.Campaign, result *entities.CampaignResult, logger *slog.Logger) {
	if j.Archive == nil {
		return
	}
	err := j.Archive.ArchiveResult(ctx, ports.ResultRecord{
		CampaignID:   campaign.ID,
		GameID:       campaign.GameID,
		CampaignName: campaign.Name,
		CampaignType: campaign.Type,
		WinnerID:     result.WinnerID,
		WinnerScore:  result.WinnerScore,
		EntryCount:   len(campaign.Ranking()),
		ExpiredAt:    result.ExpiredAt,
		RewardStatus: result.RewardStatus(),
	})
	if err != nil {
		logger.Warn("result archive write failed",
			"event", "campaign_result_archive_failed",
			"module", "live-competition/leaderboard-service",
			"layer", "worker",
			"campaign_id", campaign.ID,
			"error", err.Error(),
		)
	}
}

func (j ExpirySweeper) publish(ctx context.Context, campaign *entities.Campaign, result *entities.CampaignResult, logger *slog.Logger) {
	if j.Publisher == nil {
		return
	}
	eventID := campaign.ID
	if j.IDGenerator != nil {
		if id, err := j.IDGenerator.NewID(ctx); err == nil {
			eventID = id
		}
	}
	err := j.Publisher.Publish(ctx, ExpiredTopic, ports.EventEnvelope{
		EventID:        eventID,
		EventType:      "campaign.expired",
		SourceService:  "podium",
		OccurredAtUTC:  time.Unix(result.ExpiredAt, 0).UTC(),
		EntityType:     "campaign",
		EntityID:       campaign.ID,
		PayloadVersion: 1,
		Payload: campaignExpiredPayload{
			CampaignID:   campaign.ID,
			GameID:       campaign.GameID,
			WinnerID:     result.WinnerID,
			WinnerScore:  result.WinnerScore,
			EntryCount:   len(campaign.Ranking()),
			ExpiredAt:    result.ExpiredAt,
			RewardStatus: string(result.RewardStatus()),
		},
	})
	if err != nil {
		logger.Warn("expiry event publish failed",
			"event", "campaign_expired_publish_failed",
			"module", "live-competition/leaderboard-service",
			"layer", "worker",
			"campaign_id", campaign.ID,
			"error", err.Error(),
		)
	}
}
