package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port     int
	ClubName string

	// Persistence
	StoreType   string // json, sqlite or postgres
	DataDir     string
	DatabaseURL string

	// Voting rules
	PointBudget       int
	MaxChoices        int
	MaxBooksPerMember int
	TopDisplay        int

	// Secrets / integrations
	AdminKeySalt string
	GitHubToken  string
	GitHubRepo   string // owner/name
	GitHubBranch string
	EnrichOff    bool
}

// ParseFlags validates flags and fills defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("bookvote", flag.ContinueOnError)

	// Network / persistence config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "s", "", "Snapshot store type (json, sqlite or postgres)")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "Directory for JSON snapshots")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.ClubName, "club", "", "Club name (used to derive the admin key)")

	// Voting rules
	fs.IntVar(&cfg.PointBudget, "budget", 0, "Exact point total per ballot")
	fs.IntVar(&cfg.MaxChoices, "max-choices", 0, "Maximum distinct books per ballot")
	fs.IntVar(&cfg.MaxBooksPerMember, "max-books", 0, "Active submissions allowed per member")
	fs.IntVar(&cfg.TopDisplay, "top", 0, "Ranking entries shown by default")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.BoolVar(&cfg.EnrichOff, "no-enrich", false, "Disable metadata enrichment lookups")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}
	if cfg.ClubName == "" {
		cfg.ClubName = os.Getenv("CLUB_NAME")
	}
	if cfg.ClubName == "" {
		cfg.ClubName = "book-club"
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = "json"
		}
	}
	switch cfg.StoreType {
	case "json", "sqlite", "postgres":
	default:
		return Config{}, errors.New("store type must be json, sqlite or postgres")
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.StoreType == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
	}
	if cfg.StoreType == "sqlite" && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "bookvote.db"
	}

	if cfg.PointBudget == 0 {
		cfg.PointBudget = envInt("POINT_BUDGET", 100)
	}
	if cfg.MaxChoices == 0 {
		cfg.MaxChoices = envInt("MAX_CHOICES", 5)
	}
	if cfg.MaxBooksPerMember == 0 {
		cfg.MaxBooksPerMember = envInt("MAX_BOOKS_PER_MEMBER", 5)
	}
	if cfg.TopDisplay == 0 {
		cfg.TopDisplay = envInt("TOP_DISPLAY", 6)
	}
	if cfg.PointBudget < 1 || cfg.MaxChoices < 1 || cfg.MaxBooksPerMember < 1 || cfg.TopDisplay < 1 {
		return Config{}, errors.New("voting rule values must be positive")
	}

	// Secrets - admin salt MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	// GitHub mirroring is optional; repo without token is a config mistake
	cfg.GitHubToken = os.Getenv("GITHUB_TOKEN")
	cfg.GitHubRepo = os.Getenv("GITHUB_REPO")
	cfg.GitHubBranch = os.Getenv("GITHUB_BRANCH")
	if cfg.GitHubBranch == "" {
		cfg.GitHubBranch = "main"
	}
	if cfg.GitHubRepo != "" && cfg.GitHubToken == "" {
		return Config{}, errors.New("GITHUB_REPO set but GITHUB_TOKEN missing")
	}

	return cfg, nil
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return def
}
