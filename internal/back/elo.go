package back

import (
	"fmt"
	"math"
)

// eloKFactor is the maximum rating swing a single game can produce.
const eloKFactor = 32.0

// eloExpected returns the logistic win probability of a side rated `a`
// against a side rated `b`. eloExpected(a, b) + eloExpected(b, a) == 1.
func eloExpected(a, b float64) float64 {
	return 1.0 / (1.0 + math.Pow(10.0, (b-a)/400.0))
}

// eloOutcome maps a final score to the actual Elo score of each side. A
// strictly higher score wins and takes 1, everything else takes 0: a drawn
// game counts as a loss for BOTH sides, there is no 0.5 draw outcome.
func eloOutcome(score1, score2 int) (s1, s2 float64) {
	if score1 > score2 {
		s1 = 1
	}
	if score2 > score1 {
		s2 = 1
	}

	return s1, s2
}

// applyGameResult recomputes and persists the rating of the four players of
// a finished game. All four ratings are read up front, every new value is
// derived from the pre-game team averages, then written back as four
// independent updates. No write happens if any read fails.
//
// The read-then-write sequence is not serialized against other submissions;
// overlapping games can lose an update. Accepted at this scale.
func (b *Back) applyGameResult(team1, team2 [2]int64, score1, score2 int) error {
	var ratings [4]float64
	for i, id := range []int64{team1[0], team1[1], team2[0], team2[1]} {
		if err := b.db.Get(&ratings[i], `SELECT rating FROM players WHERE id = ?`, id); err != nil {
			return fmt.Errorf("unable to fetch rating of player %d: %w", id, err)
		}
	}

	team1Avg := (ratings[0] + ratings[1]) / 2.0
	team2Avg := (ratings[2] + ratings[3]) / 2.0
	e1 := eloExpected(team1Avg, team2Avg)
	e2 := eloExpected(team2Avg, team1Avg)
	s1, s2 := eloOutcome(score1, score2)

	deltas := [4]float64{
		eloKFactor * (s1 - e1), eloKFactor * (s1 - e1),
		eloKFactor * (s2 - e2), eloKFactor * (s2 - e2),
	}

	for i, id := range []int64{team1[0], team1[1], team2[0], team2[1]} {
		if _, err := b.db.Exec(
			`UPDATE players SET rating = ? WHERE id = ?`,
			ratings[i]+deltas[i], id,
		); err != nil {
			return fmt.Errorf("unable to store rating of player %d: %w", id, err)
		}
	}

	return nil
}
