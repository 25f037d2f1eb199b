package back // nolint:testpackage

import (
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
)

func createTestBack(t *testing.T) *Back {
	t.Helper()

	f, err := os.CreateTemp("", "*.db")
	if err != nil {
		t.Fatal(err)
	}
	path := f.Name()
	f.Close()
	t.Cleanup(func() {
		os.Remove(path)
	})

	migrator, err := migrate.New(
		"file://../../resources/migrations",
		"sqlite3://"+path,
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := migrator.Up(); err != nil {
		t.Fatal(err)
	}
	migrator.Close()

	back, err := New("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}

	return back
}

// registerTestPlayers registers the given names and returns their ids in
// the same order.
func registerTestPlayers(t *testing.T, back *Back, names ...string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		player, err := back.RegisterPlayer(name)
		if err != nil {
			t.Fatalf("unable to register %s: %s", name, err)
		}
		ids = append(ids, player.ID)
	}

	return ids
}

func playerRating(t *testing.T, back *Back, id int64) float64 {
	t.Helper()

	var rating float64
	if err := back.db.Get(&rating, `SELECT rating FROM players WHERE id = ?`, id); err != nil {
		t.Fatalf("unable to fetch rating of player %d: %s", id, err)
	}

	return rating
}
