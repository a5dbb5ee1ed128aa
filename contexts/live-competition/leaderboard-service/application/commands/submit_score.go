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

type SubmitScoreCommand struct {
	GameID        string
	ParticipantID string
	Score         int
	At            int64
}

// SubmitScoreUseCase fans a submitted score out to every campaign active
// for the game at the submission time. A non-improving score and a
// submission racing an expiry are both silent no-ops per campaign.
type SubmitScoreUseCase struct {
	Registry ports.CampaignRegistry
	Logger   *slog.Logger
}

type SubmitScoreResult struct {
	CampaignsUpdated int
	CampaignsMatched int
}

func (uc SubmitScoreUseCase) Execute(ctx context.Context, cmd SubmitScoreCommand) (SubmitScoreResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	gameID := strings.TrimSpace(cmd.GameID)
	if gameID == "" {
		return SubmitScoreResult{}, domainerrors.ErrInvalidGameID
	}
	participantID := strings.TrimSpace(cmd.ParticipantID)
	if participantID == "" {
		return SubmitScoreResult{}, domainerrors.ErrInvalidParticipantID
	}
	if cmd.Score < 0 || cmd.Score > entities.MaxScore {
		return SubmitScoreResult{}, domainerrors.ErrInvalidScore
	}
	if cmd.At < 0 {
		return SubmitScoreResult{}, domainerrors.ErrInvalidTimestamp
	}

	active, err := uc.Registry.ActiveCampaigns(ctx, gameID, cmd.At)
	if err != nil {
		return SubmitScoreResult{}, err
	}

	updated := 0
	for _, campaign := range active {
		changed, err := campaign.SubmitScore(participantID, cmd.Score)
		if err != nil {
			return SubmitScoreResult{}, err
		}
		if changed {
			updated++
		}
	}

	logger.Debug("score submitted",
		"event", "score_submitted",
		"module", "live-competition/leaderboard-service",
		"layer", "application",
		"game_id", gameID,
		"participant_id", participantID,
		"campaigns_matched", len(active),
		"campaigns_updated", updated,
	)
	return SubmitScoreResult{CampaignsUpdated: updated, CampaignsMatched: len(active)}, nil
}
