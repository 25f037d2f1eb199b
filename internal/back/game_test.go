package back // nolint:testpackage

import (
	"errors"
	"testing"

	"kicker/internal/util"
)

func countGames(t *testing.T, back *Back) int {
	t.Helper()

	var count int
	if err := back.db.Get(&count, `SELECT COUNT(*) FROM games`); err != nil {
		t.Fatal(err)
	}

	return count
}

func TestSubmitGameRejectsRepeatedPlayer(t *testing.T) {
	back := createTestBack(t)
	ids := registerTestPlayers(t, back, "A", "B", "C")

	_, err := back.SubmitGame([2]int64{ids[0], ids[1]}, [2]int64{ids[2], ids[0]}, 10, 5)
	if !errors.Is(err, util.ErrPublic("")) {
		t.Fatalf("expected a public error, got %v", err)
	}

	if count := countGames(t, back); count != 0 {
		t.Errorf("expected no game row, got %d", count)
	}
	for _, id := range ids {
		if rating := playerRating(t, back, id); rating != 1500 {
			t.Errorf("player %d: rating moved to %g on a rejected game", id, rating)
		}
	}
}

func TestSubmitGameRejectsNegativeScore(t *testing.T) {
	back := createTestBack(t)
	ids := registerTestPlayers(t, back, "A", "B", "C", "D")

	_, err := back.SubmitGame([2]int64{ids[0], ids[1]}, [2]int64{ids[2], ids[3]}, -1, 5)
	if !errors.Is(err, util.ErrPublic("")) {
		t.Fatalf("expected a public error, got %v", err)
	}

	if count := countGames(t, back); count != 0 {
		t.Errorf("expected no game row, got %d", count)
	}
}

// TestSubmitGameUnknownPlayerLeavesGameRow documents the reference
// behavior: the game insert and the rating update are two separate phases,
// so a rating failure leaves the game recorded with untouched ratings.
func TestSubmitGameUnknownPlayerLeavesGameRow(t *testing.T) {
	back := createTestBack(t)
	ids := registerTestPlayers(t, back, "A", "B", "C")

	_, err := back.SubmitGame([2]int64{ids[0], ids[1]}, [2]int64{ids[2], 999}, 10, 5)
	if err == nil {
		t.Fatal("expected an error for an unknown player id")
	}
	if errors.Is(err, util.ErrPublic("")) {
		t.Fatalf("expected a non-public error, got %v", err)
	}

	if count := countGames(t, back); count != 1 {
		t.Errorf("expected the orphaned game row to remain, got %d rows", count)
	}
	for _, id := range ids {
		if rating := playerRating(t, back, id); rating != 1500 {
			t.Errorf("player %d: rating moved to %g without a rating phase", id, rating)
		}
	}
}

func TestGetGameHistory(t *testing.T) {
	back := createTestBack(t)
	ids := registerTestPlayers(t, back, "A", "B", "C", "D", "E")

	games := [][2][2]int64{
		{{ids[0], ids[1]}, {ids[2], ids[3]}},
		{{ids[4], ids[2]}, {ids[1], ids[0]}},
		{{ids[3], ids[4]}, {ids[0], ids[2]}},
	}
	for i, teams := range games {
		if _, err := back.SubmitGame(teams[0], teams[1], 10, i); err != nil {
			t.Fatal(err)
		}
	}

	history, err := back.GetGameHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != len(games) {
		t.Fatalf("expected %d entries, got %d", len(games), len(history))
	}

	// Most recent first; same-second inserts fall back to id order.
	for i := range history {
		if i > 0 && history[i-1].ID < history[i].ID {
			t.Errorf("entries %d and %d are not newest-first", i-1, i)
		}
	}

	// The last submitted game comes first: D & E 10–2 A & C.
	first := history[0]
	if first.Team1Player1Name != "D" || first.Team1Player2Name != "E" ||
		first.Team2Player1Name != "A" || first.Team2Player2Name != "C" {
		t.Errorf("unexpected names on latest entry: %+v", first)
	}
	if first.ScoreTeam1 != 10 || first.ScoreTeam2 != 2 {
		t.Errorf("unexpected scores on latest entry: %d–%d", first.ScoreTeam1, first.ScoreTeam2)
	}
}

func TestGetPlayerStats(t *testing.T) {
	back := createTestBack(t)
	ids := registerTestPlayers(t, back, "A", "B", "C", "D")

	// A wins once, loses once, draws once.
	submit := func(team1, team2 [2]int64, s1, s2 int) {
		t.Helper()
		if _, err := back.SubmitGame(team1, team2, s1, s2); err != nil {
			t.Fatal(err)
		}
	}
	submit([2]int64{ids[0], ids[1]}, [2]int64{ids[2], ids[3]}, 10, 3)
	submit([2]int64{ids[2], ids[0]}, [2]int64{ids[1], ids[3]}, 4, 10)
	submit([2]int64{ids[0], ids[3]}, [2]int64{ids[1], ids[2]}, 5, 5)

	stats, err := back.GetPlayerStats(ids[0])
	if err != nil {
		t.Fatal(err)
	}

	if stats.Name != "A" {
		t.Errorf("expected name A, got %s", stats.Name)
	}
	if stats.Games != 3 || stats.Wins != 1 || stats.Losses != 1 || stats.Draws != 1 {
		t.Errorf("expected 3/1/1/1, got games=%d wins=%d losses=%d draws=%d",
			stats.Games, stats.Wins, stats.Losses, stats.Draws)
	}
	if !stats.LastGameAt.Valid {
		t.Error("expected a last game time")
	}
}

func TestGetPlayerStatsWithoutGames(t *testing.T) {
	back := createTestBack(t)
	ids := registerTestPlayers(t, back, "A")

	stats, err := back.GetPlayerStats(ids[0])
	if err != nil {
		t.Fatal(err)
	}

	if stats.Games != 0 || stats.Wins != 0 || stats.Losses != 0 || stats.Draws != 0 {
		t.Errorf("expected an empty record, got %+v", stats)
	}
	if stats.LastGameAt.Valid {
		t.Errorf("expected a null last game time, got %v", stats.LastGameAt.Time.Time())
	}

	if _, err := back.GetPlayerStats(999); err == nil {
		t.Error("expected an error for an unknown player id")
	}
}
