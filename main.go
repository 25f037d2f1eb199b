package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"kicker/internal/back"
	"kicker/internal/config"

	_ "github.com/mattn/go-sqlite3"
)

// Version holds the build-time version string.
var Version = "unknown" // nolint:gochecknoglobals

func main() {
	flag.Parse()

	switch flag.Arg(0) {
	case "serve":
		if err := serve(); err != nil {
			log.Fatalf("error: %s", err)
		}
	case "migrate":
		if err := migrateOnly(); err != nil {
			log.Fatalf("error: %s", err)
		}
	case "dev:fixtures":
		if err := loadFixtures(); err != nil {
			log.Fatalf("error: %s", err)
		}
	case "version":
		fmt.Fprintf(os.Stdout, "Kicker %s\n", Version)
	case "help":
		fmt.Fprint(os.Stdout, help())
	default:
		fmt.Fprint(os.Stderr, help())
		os.Exit(1)
	}
}

func migrateOnly() error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	return back.Migrate(conf.MigrationsDir, conf.SQLPath)
}

func help() string {
	return fmt.Sprintf(`
Kicker tracks office foosball games and keeps an Elo ladder.

Usage: %[1]s COMMAND [ARGS…]

COMMANDS
    serve        run the migrations and start the HTTP server
    migrate      run the migrations and exit
    dev:fixtures create default data for quick testing during development
    help         display this help
    version      display the current version
`,
		os.Args[0],
	)
}
