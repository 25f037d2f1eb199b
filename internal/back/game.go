package back

import (
	"kicker/internal/util"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// A Game is an immutable record of one 2v2 match. There is no update or
// delete: history is append-only.
type Game struct {
	ID           int64               `db:"id"`
	Team1Player1 int64               `db:"team1_player1"`
	Team1Player2 int64               `db:"team1_player2"`
	Team2Player1 int64               `db:"team2_player1"`
	Team2Player2 int64               `db:"team2_player2"`
	ScoreTeam1   int                 `db:"score_team1"`
	ScoreTeam2   int                 `db:"score_team2"`
	Timestamp    util.TimeAsDateTime `db:"timestamp"`
}

// A GameHistoryEntry is a Game with its four player ids resolved to the
// names currently stored for them.
type GameHistoryEntry struct {
	ID               int64               `db:"id" json:"id"`
	ScoreTeam1       int                 `db:"score_team1" json:"score_team1"`
	ScoreTeam2       int                 `db:"score_team2" json:"score_team2"`
	Timestamp        util.TimeAsDateTime `db:"timestamp" json:"timestamp"`
	Team1Player1Name string              `db:"team1_player1_name" json:"team1_player1_name"`
	Team1Player2Name string              `db:"team1_player2_name" json:"team1_player2_name"`
	Team2Player1Name string              `db:"team2_player1_name" json:"team2_player1_name"`
	Team2Player2Name string              `db:"team2_player2_name" json:"team2_player2_name"`
}

// SubmitGame records a finished game and runs the rating update for its
// four players. Validation happens before any write; the game insert and
// the rating update are two separate phases, a failure in the second one
// leaves the game recorded with stale ratings (see DESIGN.md).
func (b *Back) SubmitGame(team1, team2 [2]int64, score1, score2 int) (game Game, _ error) {
	if err := validateGame(team1, team2, score1, score2); err != nil {
		return Game{}, err
	}

	if err := b.transaction(func(tx *sqlx.Tx) error {
		query, args, err := squirrel.Insert("games").SetMap(squirrel.Eq{
			"team1_player1": team1[0],
			"team1_player2": team1[1],
			"team2_player1": team2[0],
			"team2_player2": team2[1],
			"score_team1":   score1,
			"score_team2":   score2,
		}).ToSql()
		if err != nil {
			return err
		}

		res, err := tx.Exec(query, args...)
		if err != nil {
			return err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		game, err = getGameByID(tx, id)
		return err
	}); err != nil {
		return Game{}, err
	}

	if err := b.applyGameResult(team1, team2, score1, score2); err != nil {
		return Game{}, err
	}

	return game, nil
}

func validateGame(team1, team2 [2]int64, score1, score2 int) error {
	ids := []int64{team1[0], team1[1], team2[0], team2[1]}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	if len(seen) != len(ids) {
		return util.ErrPublic("all players must be unique")
	}

	if score1 < 0 || score2 < 0 {
		return util.ErrPublic("scores must be non-negative integers")
	}

	return nil
}

// GetGameHistory returns every recorded game, most recent first, with the
// four player names resolved.
func (b *Back) GetGameHistory() (ret []GameHistoryEntry, _ error) {
	return ret, b.transaction(func(tx *sqlx.Tx) error {
		return tx.Select(&ret, `
            SELECT
                games.id,
                games.score_team1,
                games.score_team2,
                games.timestamp,
                p1.name AS team1_player1_name,
                p2.name AS team1_player2_name,
                p3.name AS team2_player1_name,
                p4.name AS team2_player2_name
            FROM games
            INNER JOIN players p1 ON(games.team1_player1 = p1.id)
            INNER JOIN players p2 ON(games.team1_player2 = p2.id)
            INNER JOIN players p3 ON(games.team2_player1 = p3.id)
            INNER JOIN players p4 ON(games.team2_player2 = p4.id)
            ORDER BY games.timestamp DESC, games.id DESC
        `)
	})
}

func getGameByID(tx *sqlx.Tx, id int64) (Game, error) {
	var ret Game
	query := `SELECT * FROM games WHERE games.id = ? LIMIT 1`
	if err := tx.Get(&ret, query, id); err != nil {
		return Game{}, err
	}

	return ret, nil
}
