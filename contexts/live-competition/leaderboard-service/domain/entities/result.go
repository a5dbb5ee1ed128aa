package entities

import (
	"sync"

	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
)

type RewardStatus string

const (
	RewardStatusPending   RewardStatus = "pending"
	RewardStatusDisbursed RewardStatus = "disbursed"
	RewardStatusFailed    RewardStatus = "failed"
)

// CampaignResult is the finalized outcome of an expired campaign. The winner
// fields are written once at expiry; only the reward status moves afterwards,
// and only pending -> disbursed or pending -> failed.
type CampaignResult struct {
	CampaignID  string
	WinnerID    string // empty when the board had no entries at expiry
	WinnerScore int
	ExpiredAt   int64

	mu           sync.Mutex
	rewardStatus RewardStatus
}

func NewCampaignResult(campaignID, winnerID string, winnerScore int, expiredAt int64) *CampaignResult {
	return &CampaignResult{
		CampaignID:   campaignID,
		WinnerID:     winnerID,
		WinnerScore:  winnerScore,
		ExpiredAt:    expiredAt,
		rewardStatus: RewardStatusPending,
	}
}

func (r *CampaignResult) RewardStatus() RewardStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rewardStatus
}

// MarkDisbursed settles the reward. Repeating the same settlement is a
// no-op; a reward already settled the other way is a hard error.
func (r *CampaignResult) MarkDisbursed() error {
	return r.settle(RewardStatusDisbursed)
}

// MarkFailed records that disbursement will not happen.
func (r *CampaignResult) MarkFailed() error {
	return r.settle(RewardStatusFailed)
}

func (r *CampaignResult) settle(target RewardStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rewardStatus == target {
		return nil
	}
	if r.rewardStatus != RewardStatusPending {
		return domainerrors.ErrRewardAlreadySettled
	}
	r.rewardStatus = target
	return nil
}

// ResultView is a plain copyable projection of a CampaignResult.
type ResultView struct {
	CampaignID   string
	WinnerID     string
	WinnerScore  int
	ExpiredAt    int64
	RewardStatus RewardStatus
}

func (r *CampaignResult) View() ResultView {
	return ResultView{
		CampaignID:   r.CampaignID,
		WinnerID:     r.WinnerID,
		WinnerScore:  r.WinnerScore,
		ExpiredAt:    r.ExpiredAt,
		RewardStatus: r.RewardStatus(),
	}
}

// ResultFunc turns an expiry-time ranking snapshot into a campaign result.
// It is invoked exactly once per expiring campaign.
type ResultFunc func(campaignID string, ranked []ScoreEntry, expiredAt int64) *CampaignResult

// FirstEntryWins is the default result computation: the best-ranked entry
// of the snapshot wins; an empty board produces a result without a winner.
func FirstEntryWins(campaignID string, ranked []ScoreEntry, expiredAt int64) *CampaignResult {
	if len(ranked) == 0 {
		return NewCampaignResult(campaignID, "", 0, expiredAt)
	}
	return NewCampaignResult(campaignID, ranked[0].ParticipantID, ranked[0].Score, expiredAt)
}
