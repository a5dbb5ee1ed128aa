package queries

import (
	"context"
	"strings"

	"podium/contexts/live-competition/leaderboard-service/domain/entities"
	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
	"podium/contexts/live-competition/leaderboard-service/ports"
)

type ResultUseCase struct {
	Registry ports.CampaignRegistry
}

// Result returns the finalized result view. The bool is false while the
// campaign has not expired yet; that is not an error.
func (uc ResultUseCase) Result(ctx context.Context, campaignID string) (entities.ResultView, bool, error) {
	if strings.TrimSpace(campaignID) == "" {
		return entities.ResultView{}, false, domainerrors.ErrInvalidCampaignID
	}
	campaign, err := uc.Registry.GetCampaign(ctx, strings.TrimSpace(campaignID))
	if err != nil {
		return entities.ResultView{}, false, err
	}
	result, expired := campaign.Result()
	if !expired {
		return entities.ResultView{}, false, nil
	}
	return result.View(), true, nil
}
