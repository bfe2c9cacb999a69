package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/pageclub/bookvote/cliparse"
	"github.com/pageclub/bookvote/engine"
	"github.com/pageclub/bookvote/enrich"
	"github.com/pageclub/bookvote/handlers"
	"github.com/pageclub/bookvote/router"
	"github.com/pageclub/bookvote/store"
)

func main() {
	// Load .env if present; real env always wins
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Pick the snapshot store
	var st store.Store
	switch cfg.StoreType {
	case "json":
		js := store.NewJSONStore(cfg.DataDir)
		if cfg.GitHubRepo != "" {
			js = js.WithMirror(store.NewGitHubMirror(cfg.GitHubRepo, cfg.GitHubBranch, cfg.GitHubToken))
			slog.Info("GitHub mirroring enabled", "repo", cfg.GitHubRepo, "branch", cfg.GitHubBranch)
		}
		st = js
	case "sqlite":
		sqlStore, err := store.NewSQLStore("sqlite", cfg.DatabaseURL)
		if err != nil {
			slog.Error("sqlite store setup failed", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		st = sqlStore
	case "postgres":
		sqlStore, err := store.NewSQLStore("postgres", cfg.DatabaseURL)
		if err != nil {
			slog.Error("postgres store setup failed", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		st = sqlStore
	}

	// Load persisted state and build the engine
	books, ballots, err := st.Load()
	if err != nil {
		slog.Error("failed to load snapshot", "error", err)
		os.Exit(1)
	}
	eng := engine.New(engine.Config{
		PointBudget:       cfg.PointBudget,
		MaxChoices:        cfg.MaxChoices,
		MaxBooksPerMember: cfg.MaxBooksPerMember,
	}, books, ballots)
	slog.Info("state loaded", "books", len(books), "ballots", len(ballots))

	var enricher handlers.Enricher
	if !cfg.EnrichOff {
		enricher = enrich.NewClient(10 * time.Second)
	}

	// Create router
	mux := router.NewRouter(eng, st, enricher, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "store", cfg.StoreType)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
