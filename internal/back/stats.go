package back

import (
	"kicker/internal/util"

	"github.com/jmoiron/sqlx"
)

// PlayerStats is a Player with its win/loss record aggregated from the game
// history. Drawn games are counted apart even though the rating engine
// scores them as losses.
type PlayerStats struct {
	ID         int64                   `db:"id" json:"id"`
	Name       string                  `db:"name" json:"name"`
	Rating     float64                 `db:"rating" json:"rating"`
	Games      int                     `db:"games" json:"games"`
	Wins       int                     `db:"wins" json:"wins"`
	Losses     int                     `db:"losses" json:"losses"`
	Draws      int                     `db:"draws" json:"draws"`
	LastGameAt util.NullTimeAsDateTime `db:"last_game_at" json:"last_game_at"`
}

// GetPlayerStats returns the record of a single player, sql.ErrNoRows if
// the id is unknown.
func (b *Back) GetPlayerStats(id int64) (ret PlayerStats, _ error) {
	return ret, b.transaction(func(tx *sqlx.Tx) error {
		return tx.Get(&ret, `
            SELECT
                players.id AS id,
                players.name AS name,
                players.rating AS rating,
                COUNT(games.id) AS games,
                COALESCE(SUM(CASE
                    WHEN games.score_team1 = games.score_team2 THEN 0
                    WHEN games.team1_player1 = players.id OR games.team1_player2 = players.id
                    THEN (games.score_team1 > games.score_team2)
                    ELSE (games.score_team2 > games.score_team1)
                END), 0) AS wins,
                COALESCE(SUM(CASE
                    WHEN games.score_team1 = games.score_team2 THEN 0
                    WHEN games.team1_player1 = players.id OR games.team1_player2 = players.id
                    THEN (games.score_team1 < games.score_team2)
                    ELSE (games.score_team2 < games.score_team1)
                END), 0) AS losses,
                COALESCE(SUM(games.score_team1 = games.score_team2), 0) AS draws,
                MAX(games.timestamp) AS last_game_at
            FROM players
            LEFT JOIN games ON(players.id IN(
                games.team1_player1, games.team1_player2,
                games.team2_player1, games.team2_player2
            ))
            WHERE players.id = ?
            GROUP BY players.id
        `, id)
	})
}
