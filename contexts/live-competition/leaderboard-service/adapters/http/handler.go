package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"podium/contexts/live-competition/leaderboard-service/application/commands"
	"podium/contexts/live-competition/leaderboard-service/application/queries"
	"podium/contexts/live-competition/leaderboard-service/application/workers"
	"podium/contexts/live-competition/leaderboard-service/domain/entities"
	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
	httptransport "podium/contexts/live-competition/leaderboard-service/transport/http"
)

// Handler adapts transport requests to use cases. Routing, decoding and
// status mapping live in the platform http server.
type Handler struct {
	CreateCampaign commands.CreateCampaignUseCase
	SubmitScore    commands.SubmitScoreUseCase
	Reward         commands.RewardUseCase
	Ranking        queries.RankingUseCase
	Result         queries.ResultUseCase
	Games          queries.GamesUseCase
	Sweeper        workers.ExpirySweeper
	Logger         *slog.Logger
}

func (h Handler) CreateCampaignHandler(ctx context.Context, req httptransport.CreateCampaignRequest) (httptransport.CreateCampaignResponse, error) {
	result, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		GameID:   req.GameID,
		GameName: req.GameName,
		Name:     req.Name,
		Type:     req.Type,
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
	})
	if err != nil {
		return httptransport.CreateCampaignResponse{}, err
	}
	return httptransport.CreateCampaignResponse{
		CampaignID: result.CampaignID,
		GameID:     result.GameID,
	}, nil
}

func (h Handler) SubmitScoreHandler(ctx context.Context, req httptransport.SubmitScoreRequest) (httptransport.SubmitScoreResponse, error) {
	result, err := h.SubmitScore.Execute(ctx, commands.SubmitScoreCommand{
		GameID:        req.GameID,
		ParticipantID: req.ParticipantID,
		Score:         req.Score,
		At:            req.SubmittedAt,
	})
	if err != nil {
		return httptransport.SubmitScoreResponse{}, err
	}
	return httptransport.SubmitScoreResponse{
		CampaignsMatched: result.CampaignsMatched,
		CampaignsUpdated: result.CampaignsUpdated,
	}, nil
}

func (h Handler) RankingHandler(ctx context.Context, campaignID string) (httptransport.RankingResponse, error) {
	entries, err := h.Ranking.Ranking(ctx, campaignID)
	if err != nil {
		return httptransport.RankingResponse{}, err
	}
	return httptransport.RankingResponse{
		CampaignID: campaignID,
		Entries:    mapEntries(entries),
	}, nil
}

func (h Handler) NeighborsHandler(
	ctx context.Context,
	campaignID string,
	participantID string,
	n int,
	direction string,
) (httptransport.NeighborsResponse, error) {
	dir, err := parseDirection(direction)
	if err != nil {
		return httptransport.NeighborsResponse{}, err
	}
	entries, err := h.Ranking.Neighbors(ctx, campaignID, participantID, n, dir)
	if err != nil {
		return httptransport.NeighborsResponse{}, err
	}
	return httptransport.NeighborsResponse{
		CampaignID:    campaignID,
		ParticipantID: participantID,
		Direction:     string(dir),
		Entries:       mapEntries(entries),
	}, nil
}

func (h Handler) ResultHandler(ctx context.Context, campaignID string) (httptransport.ResultResponse, error) {
	view, expired, err := h.Result.Result(ctx, campaignID)
	if err != nil {
		return httptransport.ResultResponse{}, err
	}
	if !expired {
		return httptransport.ResultResponse{CampaignID: campaignID, Expired: false}, nil
	}
	return httptransport.ResultResponse{
		CampaignID:   view.CampaignID,
		Expired:      true,
		WinnerID:     view.WinnerID,
		WinnerScore:  view.WinnerScore,
		ExpiredAt:    view.ExpiredAt,
		RewardStatus: string(view.RewardStatus),
	}, nil
}

func (h Handler) MarkRewardDisbursedHandler(ctx context.Context, campaignID string) error {
	return h.Reward.MarkDisbursed(ctx, campaignID)
}

func (h Handler) MarkRewardFailedHandler(ctx context.Context, campaignID string) error {
	return h.Reward.MarkFailed(ctx, campaignID)
}

func (h Handler) ListGamesHandler(ctx context.Context) (httptransport.ListGamesResponse, error) {
	games, err := h.Games.ListGames(ctx)
	if err != nil {
		return httptransport.ListGamesResponse{}, err
	}
	items := make([]httptransport.GameDTO, 0, len(games))
	for _, game := range games {
		items = append(items, httptransport.GameDTO{GameID: game.ID, Name: game.Name})
	}
	return httptransport.ListGamesResponse{Items: items}, nil
}

func (h Handler) SweepHandler(ctx context.Context, req httptransport.SweepRequest) (httptransport.SweepResponse, error) {
	at := time.Now().UTC().Unix()
	if req.At != nil {
		at = *req.At
	}
	count, err := h.Sweeper.SweepAt(ctx, at)
	if err != nil {
		return httptransport.SweepResponse{}, err
	}
	return httptransport.SweepResponse{ExpiredCount: count, SweptAt: at}, nil
}

func mapEntries(entries []entities.ScoreEntry) []httptransport.ScoreEntryDTO {
	items := make([]httptransport.ScoreEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, httptransport.ScoreEntryDTO{
			ParticipantID: entry.ParticipantID,
			Score:         entry.Score,
		})
	}
	return items
}

func parseDirection(value string) (queries.NeighborDirection, error) {
	switch value {
	case "above", "ABOVE":
		return queries.NeighborAbove, nil
	case "below", "BELOW":
		return queries.NeighborBelow, nil
	default:
		return "", domainerrors.ErrInvalidNeighborRequest
	}
}
