package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCampaignRequest struct {
	GameID   string `json:"game_id"`
	GameName string `json:"game_name"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	StartAt  int64  `json:"start_at"`
	EndAt    int64  `json:"end_at"`
}

type CreateCampaignResponse struct {
	CampaignID string `json:"campaign_id"`
	GameID     string `json:"game_id"`
}

type SubmitScoreRequest struct {
	GameID        string `json:"game_id"`
	ParticipantID string `json:"participant_id"`
	Score         int    `json:"score"`
	SubmittedAt   int64  `json:"submitted_at"`
}

type SubmitScoreResponse struct {
	CampaignsMatched int `json:"campaigns_matched"`
	CampaignsUpdated int `json:"campaigns_updated"`
}

type ScoreEntryDTO struct {
	ParticipantID string `json:"participant_id"`
	Score         int    `json:"score"`
}

type RankingResponse struct {
	CampaignID string          `json:"campaign_id"`
	Entries    []ScoreEntryDTO `json:"entries"`
}

type NeighborsResponse struct {
	CampaignID    string          `json:"campaign_id"`
	ParticipantID string          `json:"participant_id"`
	Direction     string          `json:"direction"`
	Entries       []ScoreEntryDTO `json:"entries"`
}

type ResultResponse struct {
	CampaignID   string `json:"campaign_id"`
	Expired      bool   `json:"expired"`
	WinnerID     string `json:"winner_id,omitempty"`
	WinnerScore  int    `json:"winner_score,omitempty"`
	ExpiredAt    int64  `json:"expired_at,omitempty"`
	RewardStatus string `json:"reward_status,omitempty"`
}

type GameDTO struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
}

type ListGamesResponse struct {
	Items []GameDTO `json:"items"`
}

type SweepRequest struct {
	At *int64 `json:"at"`
}

type SweepResponse struct {
	ExpiredCount int   `json:"expired_count"`
	SweptAt      int64 `json:"swept_at"`
}
