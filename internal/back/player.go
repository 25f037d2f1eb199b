package back

import (
	"strings"

	"kicker/internal/util"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// A Player is a registered competitor. Its rating is only ever touched by
// the rating engine after a recorded game.
type Player struct {
	ID     int64   `db:"id" json:"id"`
	Name   string  `db:"name" json:"name"`
	Rating float64 `db:"rating" json:"rating"`
}

const initialRating = 1500.0

// RegisterPlayer creates a player with the default rating. The name is
// trimmed first; an empty or already-taken name is rejected.
func (b *Back) RegisterPlayer(name string) (player Player, _ error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, util.ErrPublic("name is required")
	}

	if err := b.transaction(func(tx *sqlx.Tx) error {
		if _, err := getPlayerByName(tx, name); err == nil {
			return util.ErrPublic("player name must be unique")
		}

		query, args, err := squirrel.Insert("players").SetMap(squirrel.Eq{
			"name":   name,
			"rating": initialRating,
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

		player, err = getPlayerByID(tx, id)
		return err
	}); err != nil {
		return Player{}, err
	}

	return player, nil
}

// GetPlayers returns every registered player ordered by name, ready for
// dropdowns and the player list.
func (b *Back) GetPlayers() (ret []Player, _ error) {
	return ret, b.transaction(func(tx *sqlx.Tx) error {
		return tx.Select(&ret, `SELECT * FROM players ORDER BY name ASC`)
	})
}

// GetLeaderboard returns every player ordered by rating, best first, names
// breaking ties so the listing is stable.
func (b *Back) GetLeaderboard() (ret []Player, _ error) {
	return ret, b.transaction(func(tx *sqlx.Tx) error {
		return tx.Select(&ret, `SELECT * FROM players ORDER BY rating DESC, name ASC`)
	})
}

func getPlayerByID(tx *sqlx.Tx, id int64) (Player, error) {
	var ret Player
	query := `SELECT * FROM players WHERE players.id = ? LIMIT 1`
	if err := tx.Get(&ret, query, id); err != nil {
		return Player{}, err
	}

	return ret, nil
}

func getPlayerByName(tx *sqlx.Tx, name string) (Player, error) {
	var ret Player
	query := `SELECT * FROM players WHERE players.name = ? LIMIT 1`
	if err := tx.Get(&ret, query, name); err != nil {
		return Player{}, err
	}

	return ret, nil
}
