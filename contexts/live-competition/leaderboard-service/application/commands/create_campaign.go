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

type CreateCampaignCommand struct {
	GameID   string
	GameName string
	Name     string
	Type     string
	StartAt  int64
	EndAt    int64
}

type CreateCampaignUseCase struct {
	Registry    ports.CampaignRegistry
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type CreateCampaignResult struct {
	CampaignID string
	GameID     string
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (CreateCampaignResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	gameID := strings.TrimSpace(cmd.GameID)
	if gameID == "" {
		return CreateCampaignResult{}, domainerrors.ErrInvalidGameID
	}
	campaignType := entities.CampaignType(strings.ToLower(strings.TrimSpace(cmd.Type)))
	if campaignType == "" {
		return CreateCampaignResult{}, domainerrors.ErrInvalidCampaignType
	}

	campaignID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return CreateCampaignResult{}, err
	}
	// Validate everything before touching the registry: a rejected create
	// must not leave the game registered.
	campaign, err := entities.NewCampaign(campaignID, cmd.Name, campaignType, gameID, cmd.StartAt, cmd.EndAt)
	if err != nil {
		return CreateCampaignResult{}, err
	}

	if _, err := uc.Registry.GetOrCreateGame(ctx, gameID, cmd.GameName); err != nil {
		return CreateCampaignResult{}, err
	}
	if err := uc.Registry.RegisterCampaign(ctx, campaign); err != nil {
		return CreateCampaignResult{}, err
	}

	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "live-competition/leaderboard-service",
		"layer", "application",
		"campaign_id", campaign.ID,
		"game_id", campaign.GameID,
		"campaign_type", string(campaign.Type),
		"start_at", campaign.StartAt,
		"end_at", campaign.EndAt,
	)
	return CreateCampaignResult{CampaignID: campaign.ID, GameID: campaign.GameID}, nil
}
