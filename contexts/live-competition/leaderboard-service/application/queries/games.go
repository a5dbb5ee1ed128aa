package queries

import (
	"context"

	"podium/contexts/live-competition/leaderboard-service/domain/entities"
	"podium/contexts/live-competition/leaderboard-service/ports"
)

type GamesUseCase struct {
	Registry ports.CampaignRegistry
}

func (uc GamesUseCase) ListGames(ctx context.Context) ([]entities.Game, error) {
	return uc.Registry.ListGames(ctx)
}
