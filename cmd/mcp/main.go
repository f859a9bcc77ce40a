package main

import (
	"context"
	"flag"
	"os"

	"draft-value/internal/config"
	"draft-value/internal/league"
	"draft-value/internal/logger"
	"draft-value/internal/store"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	var (
		cfgPath    = flag.String("config", "league.yaml", "Path to league YAML")
		leagueName = flag.String("league", "", "Serve a saved league instead of --config")
		dbPath     = flag.String("db", "", "SQLite league store; draft moves are saved here when set")
		logLevel   = flag.String("log-level", "", "Log level (logs go to stderr)")
	)
	flag.Parse()

	log := logger.InitLogger(*logLevel, false)
	ctx := context.Background()

	var st *store.Store
	if *dbPath != "" {
		var err error
		st, err = store.Open(*dbPath)
		if err != nil {
			log.WithError(err).Fatal("Failed to open league store")
		}
		defer st.Close()
	}

	var l *league.League
	if *leagueName != "" {
		if st == nil {
			log.Fatal("--league needs --db")
		}
		snap, err := st.Load(ctx, *leagueName)
		if err != nil {
			log.WithError(err).Fatal("Failed to load league")
		}
		if l, err = league.Restore(snap, league.WithLogger(log)); err != nil {
			log.WithError(err).Fatal("Failed to restore league")
		}
	} else {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			log.WithError(err).Fatal("Failed to load config")
		}
		if l, err = cfg.BuildLeague(ctx, nil, log); err != nil {
			log.WithError(err).Fatal("Failed to build league")
		}
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "draft-value", Version: "0.1.0"}, nil)
	tools := &draftTools{league: l, store: st, log: log}
	tools.register(server)

	log.WithField("league", l.Name()).Info("Serving MCP tools over stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.WithError(err).Error("MCP server stopped")
		os.Exit(1)
	}
}
