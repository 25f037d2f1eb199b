package back

// LoadFixtures creates a handful of players and one recorded game for quick
// testing during development.
func (b *Back) LoadFixtures() error {
	names := []string{"Ann", "Bob", "Cid", "Dan", "Eve", "Fay"}
	players := make([]Player, 0, len(names))

	for _, name := range names {
		player, err := b.RegisterPlayer(name)
		if err != nil {
			return err
		}
		players = append(players, player)
	}

	_, err := b.SubmitGame(
		[2]int64{players[0].ID, players[1].ID},
		[2]int64{players[2].ID, players[3].ID},
		10, 5,
	)

	return err
}
