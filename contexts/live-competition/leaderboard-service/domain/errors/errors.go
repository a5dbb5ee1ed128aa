package errors

import "errors"

var (
	ErrInvalidGameID          = errors.New("game id is required")
	ErrInvalidParticipantID   = errors.New("participant id is required")
	ErrInvalidCampaignID      = errors.New("campaign id is required")
	ErrInvalidCampaignType    = errors.New("campaign type is required")
	ErrInvalidScore           = errors.New("score must be between 0 and 1000000000")
	ErrInvalidTimestamp       = errors.New("timestamp must be >= 0")
	ErrInvalidTimeWindow      = errors.New("campaign end must not precede start")
	ErrInvalidNeighborRequest = errors.New("neighbor direction must be above or below")

	ErrGameNotFound     = errors.New("game not found")
	ErrCampaignNotFound = errors.New("campaign not found")

	ErrCampaignAlreadyExists  = errors.New("campaign id already registered")
	ErrCampaignAlreadyExpired = errors.New("campaign already expired")
	ErrCampaignNotExpired     = errors.New("campaign not yet expired")
	ErrRewardAlreadySettled   = errors.New("reward status already settled")
)
