package workers

import (
	"context"
	"log/slog"

	application "podium/contexts/live-competition/leaderboard-service/application"
	"podium/contexts/live-competition/leaderboard-service/ports"
)

// ExpiryConsumer handles campaign.expired envelopes from the event bus. It
// is reward bookkeeping: each finalized campaign with a winner is flagged as
// a disbursement due, the operator-facing signal behind the reward
// settlement endpoints.
type ExpiryConsumer struct {
	Logger *slog.Logger
}

func (c ExpiryConsumer) Handle(_ context.Context, event ports.EventEnvelope) error {
	logger := application.ResolveLogger(c.Logger)

	payload, ok := event.Payload.(campaignExpiredPayload)
	if !ok {
		logger.Warn("unexpected expiry event payload",
			"event", "campaign_expired_payload_invalid",
			"module", "live-competition/leaderboard-service",
			"layer", "worker",
			"event_id", event.EventID,
			"entity_id", event.EntityID,
		)
		return nil
	}

	if payload.WinnerID == "" {
		logger.Info("campaign expired without entries",
			"event", "campaign_expired_no_winner",
			"module", "live-competition/leaderboard-service",
			"layer", "worker",
			"campaign_id", payload.CampaignID,
			"game_id", payload.GameID,
		)
		return nil
	}

	logger.Info("reward disbursement due",
		"event", "reward_disbursement_due",
		"module", "live-competition/leaderboard-service",
		"layer", "worker",
		"campaign_id", payload.CampaignID,
		"game_id", payload.GameID,
		"winner_id", payload.WinnerID,
		"winner_score", payload.WinnerScore,
		"reward_status", payload.RewardStatus,
	)
	return nil
}
