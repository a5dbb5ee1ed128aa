package entities

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
)

func TestNewCampaignValidation(t *testing.T) {
	cases := []struct {
		name     string
		id       string
		gameID   string
		campType CampaignType
		startAt  int64
		endAt    int64
		wantErr  error
	}{
		{"blank id", " ", "g1", CampaignTypeDaily, 0, 10, domainerrors.ErrInvalidCampaignID},
		{"blank game", "c1", "", CampaignTypeDaily, 0, 10, domainerrors.ErrInvalidGameID},
		{"unknown type", "c1", "g1", "hourly", 0, 10, domainerrors.ErrInvalidCampaignType},
		{"negative start", "c1", "g1", CampaignTypeDaily, -1, 10, domainerrors.ErrInvalidTimestamp},
		{"end before start", "c1", "g1", CampaignTypeWeekly, 10, 9, domainerrors.ErrInvalidTimeWindow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCampaign(tc.id, "name", tc.campType, tc.gameID, tc.startAt, tc.endAt)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	campaign, err := NewCampaign("c1", " Friday Cup ", CampaignTypeDaily, "g1", 100, 100)
	if err != nil {
		t.Fatalf("expected zero-length window to be valid, got %v", err)
	}
	if campaign.Name != "Friday Cup" {
		t.Fatalf("expected trimmed name, got %q", campaign.Name)
	}
}

func TestCampaignWindowChecks(t *testing.T) {
	campaign, err := NewCampaign("c1", "name", CampaignTypeDaily, "g1", 100, 200)
	if err != nil {
		t.Fatalf("new campaign failed: %v", err)
	}

	if campaign.IsActiveAt(99) {
		t.Fatalf("expected inactive before start")
	}
	if !campaign.IsActiveAt(100) || !campaign.IsActiveAt(200) {
		t.Fatalf("expected window bounds to be inclusive")
	}
	if campaign.IsElapsed(200) {
		t.Fatalf("expected not elapsed at end")
	}
	if !campaign.IsElapsed(201) {
		t.Fatalf("expected elapsed after end")
	}
}

func TestExpireComputesWinnerExactlyOnce(t *testing.T) {
	campaign, err := NewCampaign("c1", "name", CampaignTypeDaily, "g1", 0, 100)
	if err != nil {
		t.Fatalf("new campaign failed: %v", err)
	}
	submits := []struct {
		id    string
		score int
	}{
		{"u1", 100}, {"u2", 200}, {"u3", 150}, {"u1", 180},
	}
	for _, s := range submits {
		if _, err := campaign.SubmitScore(s.id, s.score); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	result, err := campaign.Expire(101, nil)
	if err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	if result.WinnerID != "u2" || result.WinnerScore != 200 {
		t.Fatalf("expected winner u2/200, got %s/%d", result.WinnerID, result.WinnerScore)
	}
	if result.ExpiredAt != 101 {
		t.Fatalf("expected expiredAt 101, got %d", result.ExpiredAt)
	}
	if result.RewardStatus() != RewardStatusPending {
		t.Fatalf("expected pending reward, got %s", result.RewardStatus())
	}
	if campaign.State() != CampaignStateExpired {
		t.Fatalf("expected expired state, got %s", campaign.State())
	}

	if _, err := campaign.Expire(102, nil); !errors.Is(err, domainerrors.ErrCampaignAlreadyExpired) {
		t.Fatalf("expected already-expired error, got %v", err)
	}
	stored, ok := campaign.Result()
	if !ok || stored.ExpiredAt != 101 {
		t.Fatalf("expected original result preserved, got %+v ok=%v", stored, ok)
	}
}

func TestExpireEmptyBoardHasNoWinner(t *testing.T) {
	campaign, err := NewCampaign("c1", "name", CampaignTypeWeekly, "g1", 0, 100)
	if err != nil {
		t.Fatalf("new campaign failed: %v", err)
	}

	result, err := campaign.Expire(101, nil)
	if err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	if result.WinnerID != "" || result.WinnerScore != 0 {
		t.Fatalf("expected no winner, got %s/%d", result.WinnerID, result.WinnerScore)
	}
}

func TestSubmitAfterExpiryIsDropped(t *testing.T) {
	campaign, err := NewCampaign("c1", "name", CampaignTypeDaily, "g1", 0, 100)
	if err != nil {
		t.Fatalf("new campaign failed: %v", err)
	}
	if _, err := campaign.SubmitScore("u1", 100); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	result, err := campaign.Expire(101, nil)
	if err != nil {
		t.Fatalf("expire failed: %v", err)
	}

	changed, err := campaign.SubmitScore("u2", 999)
	if err != nil {
		t.Fatalf("post-expiry submit errored: %v", err)
	}
	if changed {
		t.Fatalf("expected post-expiry submit to be dropped")
	}
	if len(campaign.Ranking()) != 1 {
		t.Fatalf("expected ranking unchanged, got %d entries", len(campaign.Ranking()))
	}
	if result.WinnerID != "u1" {
		t.Fatalf("expected recorded winner u1, got %s", result.WinnerID)
	}
}

func TestSubmitsRacingExpiryNeverMutateFrozenBoard(t *testing.T) {
	const rounds = 200

	for round := 0; round < rounds; round++ {
		campaign, err := NewCampaign("c1", "name", CampaignTypeDaily, "g1", 0, 100)
		if err != nil {
			t.Fatalf("new campaign failed: %v", err)
		}

		var atExpiry []ScoreEntry
		compute := func(campaignID string, ranked []ScoreEntry, expiredAt int64) *CampaignResult {
			atExpiry = ranked
			return FirstEntryWins(campaignID, ranked, expiredAt)
		}

		start := make(chan struct{})
		var wg sync.WaitGroup
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				<-start
				for i := 0; i < 25; i++ {
					id := fmt.Sprintf("u%d_%d", w, i)
					if _, err := campaign.SubmitScore(id, 100+i); err != nil {
						t.Errorf("submit %s failed: %v", id, err)
					}
				}
			}(w)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := campaign.Expire(101, compute); err != nil {
				t.Errorf("expire failed: %v", err)
			}
		}()
		close(start)
		wg.Wait()

		// Whatever the interleaving, the board must be frozen at the
		// snapshot the result was computed from.
		after := campaign.Ranking()
		if len(after) != len(atExpiry) {
			t.Fatalf("round %d: board changed after expiry: %d entries at expiry, %d now",
				round, len(atExpiry), len(after))
		}
		for i := range atExpiry {
			if after[i] != atExpiry[i] {
				t.Fatalf("round %d: board changed after expiry at rank %d: %+v vs %+v",
					round, i, atExpiry[i], after[i])
			}
		}
	}
}

func TestRewardStatusTransitions(t *testing.T) {
	result := NewCampaignResult("c1", "u1", 100, 50)

	if err := result.MarkDisbursed(); err != nil {
		t.Fatalf("first disburse failed: %v", err)
	}
	if result.RewardStatus() != RewardStatusDisbursed {
		t.Fatalf("expected disbursed, got %s", result.RewardStatus())
	}
	if err := result.MarkDisbursed(); err != nil {
		t.Fatalf("repeating the same settlement must be a no-op, got %v", err)
	}
	if err := result.MarkFailed(); !errors.Is(err, domainerrors.ErrRewardAlreadySettled) {
		t.Fatalf("expected already-settled error, got %v", err)
	}

	other := NewCampaignResult("c2", "", 0, 50)
	if err := other.MarkFailed(); err != nil {
		t.Fatalf("mark failed errored: %v", err)
	}
	if other.RewardStatus() != RewardStatusFailed {
		t.Fatalf("expected failed, got %s", other.RewardStatus())
	}
}
