package queries

import (
	"context"
	"strings"

	"podium/contexts/live-competition/leaderboard-service/domain/entities"
	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
	"podium/contexts/live-competition/leaderboard-service/ports"
)

type NeighborDirection string

const (
	NeighborAbove NeighborDirection = "above"
	NeighborBelow NeighborDirection = "below"
)

type RankingUseCase struct {
	Registry ports.CampaignRegistry
}

// Ranking returns the campaign's full ranking snapshot, best first.
// Expired campaigns stay readable.
func (uc RankingUseCase) Ranking(ctx context.Context, campaignID string) ([]entities.ScoreEntry, error) {
	campaign, err := uc.campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return campaign.Ranking(), nil
}

// Neighbors returns up to n entries ranked adjacent to the participant in
// the requested direction. Absent participants and boundary ranks yield an
// empty sequence, not an error.
func (uc RankingUseCase) Neighbors(
	ctx context.Context,
	campaignID string,
	participantID string,
	n int,
	direction NeighborDirection,
) ([]entities.ScoreEntry, error) {
	campaign, err := uc.campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(participantID) == "" {
		return nil, domainerrors.ErrInvalidParticipantID
	}
	switch direction {
	case NeighborAbove:
		return campaign.NeighborsAbove(participantID, n), nil
	case NeighborBelow:
		return campaign.NeighborsBelow(participantID, n), nil
	default:
		return nil, domainerrors.ErrInvalidNeighborRequest
	}
}

func (uc RankingUseCase) campaign(ctx context.Context, campaignID string) (*entities.Campaign, error) {
	if strings.TrimSpace(campaignID) == "" {
		return nil, domainerrors.ErrInvalidCampaignID
	}
	return uc.Registry.GetCampaign(ctx, strings.TrimSpace(campaignID))
}
