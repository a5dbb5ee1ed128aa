package ports

import (
	"context"
	"time"

	"podium/contexts/live-competition/leaderboard-service/domain/entities"
	"podium/internal/shared/events"
)

// CampaignRegistry indexes campaigns by id and by owning game. The per-game
// campaign lists are append-only in normal operation; the sweep's
// TakeElapsed is the only call that moves a campaign out of a game's active
// set, under a short per-game exclusive section.
type CampaignRegistry interface {
	GetOrCreateGame(ctx context.Context, gameID, gameName string) (entities.Game, error)
	ListGames(ctx context.Context) ([]entities.Game, error)
	RegisterCampaign(ctx context.Context, campaign *entities.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (*entities.Campaign, error)
	// ActiveCampaigns returns the campaigns owned by gameID whose window
	// covers at. Unknown game is reported, not auto-created.
	ActiveCampaigns(ctx context.Context, gameID string, at int64) ([]*entities.Campaign, error)
	AllCampaigns(ctx context.Context, gameID string) ([]*entities.Campaign, error)
	// TakeElapsed moves every campaign whose window elapsed at the given
	// time out of its game's active set and returns the batch. Callers own
	// the subsequent expiry transition; winner computation must happen
	// after the per-game section is released, which this contract
	// guarantees by collecting membership first.
	TakeElapsed(ctx context.Context, at int64) ([]*entities.Campaign, error)
}

// ResultRecord is the flattened archive row for a finalized campaign.
type ResultRecord struct {
	CampaignID   string
	GameID       string
	CampaignName string
	CampaignType entities.CampaignType
	WinnerID     string
	WinnerScore  int
	EntryCount   int
	ExpiredAt    int64
	RewardStatus entities.RewardStatus
}

// ResultArchive records finalized results outside the live core. Archiving
// is bookkeeping for reporting, not recovery; the live ranking state is
// never persisted.
type ResultArchive interface {
	ArchiveResult(ctx context.Context, record ResultRecord) error
	UpdateRewardStatus(ctx context.Context, campaignID string, status entities.RewardStatus) error
}

type EventEnvelope = events.Envelope

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
