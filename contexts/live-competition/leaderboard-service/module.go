package leaderboardservice

import (
	"log/slog"

	httpadapter "podium/contexts/live-competition/leaderboard-service/adapters/http"
	"podium/contexts/live-competition/leaderboard-service/adapters/memory"
	"podium/contexts/live-competition/leaderboard-service/application/commands"
	"podium/contexts/live-competition/leaderboard-service/application/queries"
	"podium/contexts/live-competition/leaderboard-service/application/workers"
	"podium/contexts/live-competition/leaderboard-service/domain/entities"
	"podium/contexts/live-competition/leaderboard-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Sweeper workers.ExpirySweeper
}

type Dependencies struct {
	Registry    ports.CampaignRegistry
	Archive     ports.ResultArchive
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Compute     entities.ResultFunc
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	sweeper := workers.ExpirySweeper{
		Registry:    deps.Registry,
		Archive:     deps.Archive,
		Publisher:   deps.Publisher,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Compute:     deps.Compute,
		Logger:      deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign: commands.CreateCampaignUseCase{
				Registry:    deps.Registry,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			SubmitScore: commands.SubmitScoreUseCase{
				Registry: deps.Registry,
				Logger:   deps.Logger,
			},
			Reward: commands.RewardUseCase{
				Registry: deps.Registry,
				Archive:  deps.Archive,
				Logger:   deps.Logger,
			},
			Ranking: queries.RankingUseCase{Registry: deps.Registry},
			Result:  queries.ResultUseCase{Registry: deps.Registry},
			Games:   queries.GamesUseCase{Registry: deps.Registry},
			Sweeper: sweeper,
			Logger:  deps.Logger,
		},
		Sweeper: sweeper,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Registry:    memory.NewStore(),
		Clock:       memory.SystemClock{},
		IDGenerator: memory.UUIDGenerator{},
		Logger:      logger,
	})
}
