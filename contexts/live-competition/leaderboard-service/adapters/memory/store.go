package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"podium/contexts/live-competition/leaderboard-service/domain/entities"
	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"

	"github.com/google/uuid"
)

// Store is the in-process campaign registry. Campaign lists are indexed per
// game; the submit path reads only the one game's active list, and the
// sweep takes a short per-game exclusive section to decide membership. No
// lock spans more than one game.
type Store struct {
	mu            sync.RWMutex
	games         map[string]entities.Game
	campaigns     map[string]*entities.Campaign
	activeByGame  map[string][]*entities.Campaign
	expiredByGame map[string][]*entities.Campaign
	gameLocks     map[string]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		games:         make(map[string]entities.Game),
		campaigns:     make(map[string]*entities.Campaign),
		activeByGame:  make(map[string][]*entities.Campaign),
		expiredByGame: make(map[string][]*entities.Campaign),
		gameLocks:     make(map[string]*sync.Mutex),
	}
}

func (s *Store) GetOrCreateGame(_ context.Context, gameID, gameName string) (entities.Game, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return entities.Game{}, domainerrors.ErrInvalidGameID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if game, exists := s.games[gameID]; exists {
		return game, nil
	}
	game, err := entities.NewGame(gameID, gameName)
	if err != nil {
		return entities.Game{}, err
	}
	s.games[gameID] = game
	s.gameLocks[gameID] = &sync.Mutex{}
	return game, nil
}

func (s *Store) ListGames(_ context.Context) ([]entities.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Game, 0, len(s.games))
	for _, game := range s.games {
		items = append(items, game)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *Store) RegisterCampaign(_ context.Context, campaign *entities.Campaign) error {
	if campaign == nil {
		return domainerrors.ErrInvalidCampaignID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.ID]; exists {
		return domainerrors.ErrCampaignAlreadyExists
	}
	if _, exists := s.games[campaign.GameID]; !exists {
		return domainerrors.ErrGameNotFound
	}
	s.campaigns[campaign.ID] = campaign
	s.activeByGame[campaign.GameID] = append(s.activeByGame[campaign.GameID], campaign)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (*entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaign, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return nil, domainerrors.ErrCampaignNotFound
	}
	return campaign, nil
}

func (s *Store) ActiveCampaigns(_ context.Context, gameID string, at int64) ([]*entities.Campaign, error) {
	gameID = strings.TrimSpace(gameID)

	s.mu.RLock()
	_, known := s.games[gameID]
	candidates := append([]*entities.Campaign(nil), s.activeByGame[gameID]...)
	s.mu.RUnlock()

	if !known {
		return nil, domainerrors.ErrGameNotFound
	}

	items := make([]*entities.Campaign, 0, len(candidates))
	for _, campaign := range candidates {
		if campaign.IsActiveAt(at) {
			items = append(items, campaign)
		}
	}
	return items, nil
}

func (s *Store) AllCampaigns(_ context.Context, gameID string) ([]*entities.Campaign, error) {
	gameID = strings.TrimSpace(gameID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, known := s.games[gameID]; !known {
		return nil, domainerrors.ErrGameNotFound
	}
	items := make([]*entities.Campaign, 0, len(s.activeByGame[gameID])+len(s.expiredByGame[gameID]))
	items = append(items, s.activeByGame[gameID]...)
	items = append(items, s.expiredByGame[gameID]...)
	return items, nil
}

// TakeElapsed moves every campaign whose window elapsed at the given time
// from its game's active list to the expired list and returns the batch.
// Each campaign is handed out exactly once, so repeated sweeps cannot
// double-expire. The per-game section covers only the membership decision;
// winner computation happens in the caller after release.
func (s *Store) TakeElapsed(_ context.Context, at int64) ([]*entities.Campaign, error) {
	s.mu.RLock()
	gameIDs := make([]string, 0, len(s.gameLocks))
	for gameID := range s.gameLocks {
		gameIDs = append(gameIDs, gameID)
	}
	s.mu.RUnlock()
	sort.Strings(gameIDs)

	var collected []*entities.Campaign
	for _, gameID := range gameIDs {
		s.mu.RLock()
		lock := s.gameLocks[gameID]
		s.mu.RUnlock()
		if lock == nil {
			continue
		}

		lock.Lock()
		s.mu.Lock()
		active := s.activeByGame[gameID]
		remaining := active[:0]
		var elapsed []*entities.Campaign
		for _, campaign := range active {
			if campaign.IsElapsed(at) {
				elapsed = append(elapsed, campaign)
				continue
			}
			remaining = append(remaining, campaign)
		}
		s.activeByGame[gameID] = remaining
		if len(elapsed) > 0 {
			s.expiredByGame[gameID] = append(s.expiredByGame[gameID], elapsed...)
		}
		s.mu.Unlock()
		lock.Unlock()

		collected = append(collected, elapsed...)
	}
	return collected, nil
}

// SystemClock is the default runtime clock implementation.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator creates campaign and event identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
