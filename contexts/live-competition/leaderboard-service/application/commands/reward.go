package commands

import (
	"context"
	"log/slog"
	"strings"

	application "podium/contexts/live-competition/leaderboard-service/application"
	"podium/contexts/live-competition/leaderboard-service/domain/entities"
	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
	"podium/contexts/live-competition/leaderboard-service/ports"
)

// RewardUseCase settles the reward flag on a finalized campaign result.
// Settling before expiry is precondition-failed, distinct from not-found.
type RewardUseCase struct {
	Registry ports.CampaignRegistry
	Archive  ports.ResultArchive
	Logger   *slog.Logger
}

func (uc RewardUseCase) MarkDisbursed(ctx context.Context, campaignID string) error {
	return uc.settle(ctx, campaignID, entities.RewardStatusDisbursed)
}

func (uc RewardUseCase) MarkFailed(ctx context.Context, campaignID string) error {
	return uc.settle(ctx, campaignID, entities.RewardStatusFailed)
}

func (uc RewardUseCase) settle(ctx context.Context, campaignID string, status entities.RewardStatus) error {
	logger := application.ResolveLogger(uc.Logger)

	if strings.TrimSpace(campaignID) == "" {
		return domainerrors.ErrInvalidCampaignID
	}
	campaign, err := uc.Registry.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	result, expired := campaign.Result()
	if !expired {
		return domainerrors.ErrCampaignNotExpired
	}

	switch status {
	case entities.RewardStatusDisbursed:
		err = result.MarkDisbursed()
	case entities.RewardStatusFailed:
		err = result.MarkFailed()
	}
	if err != nil {
		return err
	}

	if uc.Archive != nil {
		if archiveErr := uc.Archive.UpdateRewardStatus(ctx, campaign.ID, status); archiveErr != nil {
			logger.Warn("reward status archive update failed",
				"event", "reward_archive_update_failed",
				"module", "live-competition/leaderboard-service",
				"layer", "application",
				"campaign_id", campaign.ID,
				"error", archiveErr.Error(),
			)
		}
	}

	logger.Info("reward status settled",
		"event", "reward_status_settled",
		"module", "live-competition/leaderboard-service",
		"layer", "application",
		"campaign_id", campaign.ID,
		"reward_status", string(status),
	)
	return nil
}
