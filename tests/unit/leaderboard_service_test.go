package unit

import (
	"context"
	"errors"
	"testing"

	leaderboardservice "podium/contexts/live-competition/leaderboard-service"
	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
	httptransport "podium/contexts/live-competition/leaderboard-service/transport/http"
)

func createCampaign(t *testing.T, module leaderboardservice.Module, gameID, name string, startAt, endAt int64) string {
	t.Helper()
	resp, err := module.Handler.CreateCampaignHandler(context.Background(), httptransport.CreateCampaignRequest{
		GameID:   gameID,
		GameName: "Chess Blitz",
		Name:     name,
		Type:     "weekly",
		StartAt:  startAt,
		EndAt:    endAt,
	})
	if err != nil {
		t.Fatalf("create campaign %s: %v", name, err)
	}
	return resp.CampaignID
}

func TestCreateCampaignValidation(t *testing.T) {
	module := leaderboardservice.NewInMemoryModule(nil)
	ctx := context.Background()

	cases := []struct {
		name string
		req  httptransport.CreateCampaignRequest
		want error
	}{
		{
			name: "blank game id",
			req:  httptransport.CreateCampaignRequest{Type: "daily", StartAt: 10, EndAt: 20},
			want: domainerrors.ErrInvalidGameID,
		},
		{
			name: "unsupported type",
			req:  httptransport.CreateCampaignRequest{GameID: "chess", Type: "hourly", StartAt: 10, EndAt: 20},
			want: domainerrors.ErrInvalidCampaignType,
		},
		{
			name: "inverted window",
			req:  httptransport.CreateCampaignRequest{GameID: "chess", Type: "daily", StartAt: 20, EndAt: 10},
			want: domainerrors.ErrInvalidTimeWindow,
		},
		{
			name: "negative start",
			req:  httptransport.CreateCampaignRequest{GameID: "chess", Type: "daily", StartAt: -1, EndAt: 10},
			want: domainerrors.ErrInvalidTimestamp,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := module.Handler.CreateCampaignHandler(ctx, tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRejectedCreateLeavesNoPartialState(t *testing.T) {
	module := leaderboardservice.NewInMemoryModule(nil)
	ctx := context.Background()

	_, err := module.Handler.CreateCampaignHandler(ctx, httptransport.CreateCampaignRequest{
		GameID:  "ghost-game",
		Type:    "daily",
		StartAt: 20,
		EndAt:   10,
	})
	if !errors.Is(err, domainerrors.ErrInvalidTimeWindow) {
		t.Fatalf("expected invalid time window, got %v", err)
	}

	games, err := module.Handler.ListGamesHandler(ctx)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games.Items) != 0 {
		t.Fatalf("expected rejected create to register nothing, got %+v", games.Items)
	}

	_, err = module.Handler.SubmitScoreHandler(ctx, httptransport.SubmitScoreRequest{
		GameID:        "ghost-game",
		ParticipantID: "u1",
		Score:         10,
		SubmittedAt:   10,
	})
	if !errors.Is(err, domainerrors.ErrGameNotFound) {
		t.Fatalf("expected game not found after rejected create, got %v", err)
	}
}

func TestSubmitScoreFansOutToActiveCampaigns(t *testing.T) {
	module := leaderboardservice.NewInMemoryModule(nil)
	ctx := context.Background()

	createCampaign(t, module, "chess", "Week 1", 100, 200)
	createCampaign(t, module, "chess", "Season", 50, 500)
	createCampaign(t, module, "chess", "Week 0", 0, 99)

	resp, err := module.Handler.SubmitScoreHandler(ctx, httptransport.SubmitScoreRequest{
		GameID:        "chess",
		ParticipantID: "u1",
		Score:         120,
		SubmittedAt:   150,
	})
	if err != nil {
		t.Fatalf("submit score: %v", err)
	}
	if resp.CampaignsMatched != 2 || resp.CampaignsUpdated != 2 {
		t.Fatalf("expected fan-out to both open campaigns, got matched=%d updated=%d",
			resp.CampaignsMatched, resp.CampaignsUpdated)
	}

	// A lower score for the same participant matches but changes nothing.
	resp, err = module.Handler.SubmitScoreHandler(ctx, httptransport.SubmitScoreRequest{
		GameID:        "chess",
		ParticipantID: "u1",
		Score:         80,
		SubmittedAt:   150,
	})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if resp.CampaignsMatched != 2 || resp.CampaignsUpdated != 0 {
		t.Fatalf("expected no-op on non-improving score, got matched=%d updated=%d",
			resp.CampaignsMatched, resp.CampaignsUpdated)
	}
}

func TestSubmitScoreUnknownGame(t *testing.T) {
	module := leaderboardservice.NewInMemoryModule(nil)

	_, err := module.Handler.SubmitScoreHandler(context.Background(), httptransport.SubmitScoreRequest{
		GameID:        "unknown",
		ParticipantID: "u1",
		Score:         10,
		SubmittedAt:   10,
	})
	if !errors.Is(err, domainerrors.ErrGameNotFound) {
		t.Fatalf("expected game not found, got %v", err)
	}
}

func TestRankingAndNeighborsThroughHandler(t *testing.T) {
	module := leaderboardservice.NewInMemoryModule(nil)
	ctx := context.Background()

	campaignID := createCampaign(t, module, "chess", "Week 1", 0, 1000)
	scores := map[string]int{"alice": 300, "bob": 500, "carol": 400, "dave": 400}
	for participant, score := range scores {
		if _, err := module.Handler.SubmitScoreHandler(ctx, httptransport.SubmitScoreRequest{
			GameID: "chess", ParticipantID: participant, Score: score, SubmittedAt: 10,
		}); err != nil {
			t.Fatalf("submit %s: %v", participant, err)
		}
	}

	ranking, err := module.Handler.RankingHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("ranking: %v", err)
	}
	wantOrder := []string{"bob", "carol", "dave", "alice"}
	if len(ranking.Entries) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(ranking.Entries))
	}
	for i, id := range wantOrder {
		if ranking.Entries[i].ParticipantID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, ranking.Entries[i].ParticipantID)
		}
	}

	above, err := module.Handler.NeighborsHandler(ctx, campaignID, "dave", 2, "above")
	if err != nil {
		t.Fatalf("neighbors above: %v", err)
	}
	if len(above.Entries) != 2 || above.Entries[0].ParticipantID != "bob" || above.Entries[1].ParticipantID != "carol" {
		t.Fatalf("unexpected neighbors above dave: %+v", above.Entries)
	}

	below, err := module.Handler.NeighborsHandler(ctx, campaignID, "dave", 5, "below")
	if err != nil {
		t.Fatalf("neighbors below: %v", err)
	}
	if len(below.Entries) != 1 || below.Entries[0].ParticipantID != "alice" {
		t.Fatalf("unexpected neighbors below dave: %+v", below.Entries)
	}

	if _, err := module.Handler.NeighborsHandler(ctx, campaignID, "dave", 2, "sideways"); !errors.Is(err, domainerrors.ErrInvalidNeighborRequest) {
		t.Fatalf("expected invalid neighbor request, got %v", err)
	}
	if _, err := module.Handler.RankingHandler(ctx, "missing"); !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected campaign not found, got %v", err)
	}
}

func TestSweepQueryAndRewardFlow(t *testing.T) {
	module := leaderboardservice.NewInMemoryModule(nil)
	ctx := context.Background()

	campaignID := createCampaign(t, module, "chess", "Week 1", 0, 100)
	for _, submit := range []httptransport.SubmitScoreRequest{
		{GameID: "chess", ParticipantID: "u1", Score: 100, SubmittedAt: 10},
		{GameID: "chess", ParticipantID: "u2", Score: 200, SubmittedAt: 20},
		{GameID: "chess", ParticipantID: "u3", Score: 150, SubmittedAt: 30},
	} {
		if _, err := module.Handler.SubmitScoreHandler(ctx, submit); err != nil {
			t.Fatalf("submit %s: %v", submit.ParticipantID, err)
		}
	}

	// Reward cannot settle before the campaign expired.
	if err := module.Handler.MarkRewardDisbursedHandler(ctx, campaignID); !errors.Is(err, domainerrors.ErrCampaignNotExpired) {
		t.Fatalf("expected campaign not expired, got %v", err)
	}
	result, err := module.Handler.ResultHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("result before expiry: %v", err)
	}
	if result.Expired {
		t.Fatalf("campaign should not be expired yet")
	}

	at := int64(150)
	sweep, err := module.Handler.SweepHandler(ctx, httptransport.SweepRequest{At: &at})
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if sweep.ExpiredCount != 1 || sweep.SweptAt != 150 {
		t.Fatalf("expected one expiry at 150, got %+v", sweep)
	}

	result, err = module.Handler.ResultHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("result after expiry: %v", err)
	}
	if !result.Expired || result.WinnerID != "u2" || result.WinnerScore != 200 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.RewardStatus != "pending" {
		t.Fatalf("expected pending reward, got %s", result.RewardStatus)
	}

	if err := module.Handler.MarkRewardDisbursedHandler(ctx, campaignID); err != nil {
		t.Fatalf("disburse: %v", err)
	}
	// Same terminal state again is a no-op.
	if err := module.Handler.MarkRewardDisbursedHandler(ctx, campaignID); err != nil {
		t.Fatalf("repeat disburse: %v", err)
	}
	if err := module.Handler.MarkRewardFailedHandler(ctx, campaignID); !errors.Is(err, domainerrors.ErrRewardAlreadySettled) {
		t.Fatalf("expected reward already settled, got %v", err)
	}

	result, err = module.Handler.ResultHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("result after disburse: %v", err)
	}
	if result.RewardStatus != "disbursed" {
		t.Fatalf("expected disbursed reward, got %s", result.RewardStatus)
	}

	// Late submissions no longer reach the expired campaign.
	resp, err := module.Handler.SubmitScoreHandler(ctx, httptransport.SubmitScoreRequest{
		GameID: "chess", ParticipantID: "u9", Score: 999, SubmittedAt: 160,
	})
	if err != nil {
		t.Fatalf("late submit: %v", err)
	}
	if resp.CampaignsMatched != 0 {
		t.Fatalf("expected expired campaign excluded from matching, got %d", resp.CampaignsMatched)
	}
	ranking, err := module.Handler.RankingHandler(ctx, campaignID)
	if err != nil {
		t.Fatalf("ranking after expiry: %v", err)
	}
	if len(ranking.Entries) != 3 {
		t.Fatalf("expected frozen board with 3 entries, got %d", len(ranking.Entries))
	}
}

func TestListGamesRegistersOnCampaignCreation(t *testing.T) {
	module := leaderboardservice.NewInMemoryModule(nil)
	ctx := context.Background()

	games, err := module.Handler.ListGamesHandler(ctx)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games.Items) != 0 {
		t.Fatalf("expected no games initially, got %d", len(games.Items))
	}

	createCampaign(t, module, "tetris", "Sprint", 0, 100)
	createCampaign(t, module, "chess", "Week 1", 0, 100)
	createCampaign(t, module, "chess", "Season", 0, 1000)

	games, err = module.Handler.ListGamesHandler(ctx)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games.Items) != 2 {
		t.Fatalf("expected two games, got %d", len(games.Items))
	}
	if games.Items[0].GameID != "chess" || games.Items[1].GameID != "tetris" {
		t.Fatalf("expected games sorted by id, got %+v", games.Items)
	}
}
