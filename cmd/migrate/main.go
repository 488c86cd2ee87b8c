package main

import (
	"errors"
	"flag"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/strivefit-engine/internal/config"
	"github.com/comitanigiacomo/strivefit-engine/migrations"
)

// Usage: migrate [up|down|version] [-steps N]
func main() {
	steps := flag.Int("steps", 0, "number of migrations to apply (negative rolls back); 0 means all")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found")
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		cfg := config.Config{
			DBHost:     envOr("DB_HOST", "localhost"),
			DBPort:     envOr("DB_PORT", "5432"),
			DBUser:     envOr("DB_USER", "strivefit_user"),
			DBPassword: envOr("DB_PASSWORD", "secret"),
			DBName:     envOr("DB_NAME", "strivefit_db"),
		}
		dbURL = cfg.PostgresDSN()
	}

	m, err := migrations.New(dbURL)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	cmd := "up"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	switch {
	case *steps != 0:
		err = m.Steps(*steps)
	case cmd == "down":
		err = m.Down()
	case cmd == "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatal(verr)
		}
		log.Infof("Schema version %d (dirty: %v)", version, dirty)
		return
	default:
		err = m.Up()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}
	log.Infof("Migration %s successful", cmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
