package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"draft-value/internal/analysis"
	"draft-value/internal/config"
	"draft-value/internal/data"
	"draft-value/internal/league"
	"draft-value/internal/logger"
	"draft-value/internal/mockdraft"
	"draft-value/internal/model"
	"draft-value/internal/store"

	"github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log := logger.InitLogger("", true)
	var err error
	switch os.Args[1] {
	case "rank":
		err = cmdRank(os.Args[2:], log)
	case "pick":
		err = cmdPick(os.Args[2:], log)
	case "positions":
		err = cmdPositions(os.Args[2:], log)
	case "draft":
		err = cmdDraft(os.Args[2:], log, false)
	case "undraft":
		err = cmdDraft(os.Args[2:], log, true)
	case "mock":
		err = cmdMock(os.Args[2:], log)
	case "save":
		err = cmdSave(os.Args[2:], log)
	case "export":
		err = cmdExport(os.Args[2:], log)
	case "fetch":
		err = cmdFetch(os.Args[2:], log)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Error(os.Args[1] + " failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli rank --config league.yaml [--position rb] [--n 25] [--auction]")
	fmt.Println("  cli pick --league home --team 3 [--n 5]")
	fmt.Println("  cli positions --config league.yaml")
	fmt.Println("  cli draft --league home --player 1234 --team \"Team 3\" [--price 41]")
	fmt.Println("  cli undraft --league home --player 1234 --team 3")
	fmt.Println("  cli mock --config league.yaml --out results/mock.csv [--rounds 5]")
	fmt.Println("  cli save --config league.yaml [--as home]")
	fmt.Println("  cli export --league home --out results/board.csv")
	fmt.Println("  cli fetch --config league.yaml --out data/projections.json")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - --league reads a saved league from --db (default leagues.db) instead of --config")
	fmt.Println("  - draft and undraft write the updated league back to --db")
}

// source is the pair of flags every subcommand uses to find its league.
type source struct {
	configPath *string
	leagueName *string
	dbPath     *string
}

func sourceFlags(fs *flag.FlagSet) source {
	return source{
		configPath: fs.String("config", "league.yaml", "Path to league YAML"),
		leagueName: fs.String("league", "", "Name of a saved league; overrides --config"),
		dbPath:     fs.String("db", "leagues.db", "Path to the SQLite league store"),
	}
}

func (s source) load(ctx context.Context, log *logrus.Logger) (*league.League, error) {
	if *s.leagueName != "" {
		st, err := store.Open(*s.dbPath)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		snap, err := st.Load(ctx, *s.leagueName)
		if err != nil {
			return nil, err
		}
		return league.Restore(snap, league.WithLogger(log))
	}
	cfg, err := config.Load(*s.configPath)
	if err != nil {
		return nil, err
	}
	return cfg.BuildLeague(ctx, nil, log)
}

func cmdRank(args []string, log *logrus.Logger) error {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	src := sourceFlags(fs)
	position := fs.String("position", "", "Limit to one position (qb, rb, wr, te)")
	n := fs.Int("n", 25, "Number of players to show")
	auction := fs.Bool("auction", false, "Rank by auction value")
	_ = fs.Parse(args)

	l, err := src.load(context.Background(), log)
	if err != nil {
		return err
	}
	pos, err := parsePosition(*position)
	if err != nil {
		return err
	}
	if *auction && !l.Roster().HasAuction() {
		return fmt.Errorf("league %s has no auction budget", l.Name())
	}

	rows := analysis.Board(l, pos, *n, *auction)
	fmt.Printf("%-4s %-8s %-24s %-4s %-4s %-8s %-8s %-8s\n", "rank", "id", "player", "pos", "tm", "points", "vor", "$")
	for _, r := range rows {
		price := "-"
		if r.AuctionValue != nil {
			price = fmt.Sprintf("%.1f", *r.AuctionValue)
		}
		fmt.Printf("%-4d %-8s %-24s %-4s %-4s %-8.1f %-8.1f %-8s\n",
			r.Rank, r.PlayerID, truncate(r.Name, 24), r.Position, r.NFLTeam, r.SeasonPoints, r.VOR, price)
	}
	return nil
}

func cmdPick(args []string, log *logrus.Logger) error {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	src := sourceFlags(fs)
	team := fs.String("team", "", "Team id or name")
	n := fs.Int("n", league.DefaultBestPicks, "Number of suggestions")
	_ = fs.Parse(args)

	if *team == "" {
		return fmt.Errorf("--team is required")
	}
	l, err := src.load(context.Background(), log)
	if err != nil {
		return err
	}
	t, picks, err := l.BestPick(teamRef(*team), *n)
	if err != nil {
		return err
	}

	fmt.Printf("Best picks for %s (%d/%d rostered)\n", t.DisplayName(), t.Len(), l.Roster().RosterSize)
	fmt.Printf("%-4s %-8s %-24s %-4s %-8s\n", "rank", "id", "player", "pos", "added")
	for i, r := range picks {
		fmt.Printf("%-4d %-8s %-24s %-4s %-8.1f\n", i+1, r.Player.ID, truncate(r.Player.Name, 24), r.Player.Position, r.Value)
	}
	return nil
}

func cmdPositions(args []string, log *logrus.Logger) error {
	fs := flag.NewFlagSet("positions", flag.ExitOnError)
	src := sourceFlags(fs)
	_ = fs.Parse(args)

	l, err := src.load(context.Background(), log)
	if err != nil {
		return err
	}
	summaries := analysis.Scarcity(l)

	fmt.Printf("%-4s %-5s %-6s %-8s %-8s %-8s %-8s %-8s %-8s\n", "rank", "pos", "avail", "repl", "max", "mean", "p95", "p05", "dropoff")
	for i, s := range summaries {
		fmt.Printf("%-4d %-5s %-6d %-8.1f %-8.1f %-8.1f %-8.1f %-8.1f %-8.1f\n",
			i+1, s.Position, s.Available, s.Replacement, s.MaxVOR, s.MeanVOR, s.P95VOR, s.P05VOR, s.DropOff)
	}
	return nil
}

func cmdDraft(args []string, log *logrus.Logger, undo bool) error {
	name := "draft"
	if undo {
		name = "undraft"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	leagueName := fs.String("league", "", "Saved league to update")
	dbPath := fs.String("db", "leagues.db", "Path to the SQLite league store")
	playerID := fs.String("player", "", "Player id")
	team := fs.String("team", "", "Team id or name")
	price := fs.Float64("price", -1, "Auction price paid (draft only)")
	_ = fs.Parse(args)

	if *leagueName == "" || *playerID == "" || *team == "" {
		return fmt.Errorf("--league, --player and --team are required")
	}
	ctx := context.Background()
	st, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	snap, err := st.Load(ctx, *leagueName)
	if err != nil {
		return err
	}
	l, err := league.Restore(snap, league.WithLogger(log))
	if err != nil {
		return err
	}

	var t *league.Team
	if undo {
		t, err = l.Undraft(*playerID, teamRef(*team))
	} else {
		var paid *float64
		if *price >= 0 {
			paid = price
		}
		t, err = l.Draft(*playerID, teamRef(*team), paid)
	}
	if err != nil {
		return err
	}
	if err := st.Save(ctx, l.Snapshot()); err != nil {
		return err
	}
	logger.WithLeague(log, l.Name()).WithFields(logrus.Fields{
		"player": *playerID,
		"team":   t.ID,
	}).Debug(name + " saved")
	fmt.Printf("%s: %s now holds %d players\n", name, t.DisplayName(), t.Len())
	return nil
}

func cmdMock(args []string, log *logrus.Logger) error {
	fs := flag.NewFlagSet("mock", flag.ExitOnError)
	cfgPath := fs.String("config", "league.yaml", "Path to league YAML")
	outPath := fs.String("out", "results/mock.csv", "Output CSV path")
	rounds := fs.Int("rounds", 0, "Rounds to draft (0 = mock.rounds, then full rosters)")
	_ = fs.Parse(args)

	ctx := context.Background()
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	perTeam, fallback, err := cfg.MockStrategies()
	if err != nil {
		return err
	}
	l, err := cfg.BuildLeague(ctx, nil, log)
	if err != nil {
		return err
	}
	if *rounds == 0 {
		*rounds = cfg.Mock.Rounds
	}

	res, err := mockdraft.New(log).Run(ctx, l, perTeam, fallback, *rounds)
	if err != nil {
		return err
	}
	if err := mockdraft.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		return err
	}

	fmt.Printf("Wrote %d picks to %s\n", len(res.Ledger), *outPath)
	fmt.Printf("%-4s %-20s %-10s %-6s %-8s\n", "id", "team", "strategy", "picks", "added")
	for _, t := range res.Teams {
		fmt.Printf("%-4d %-20s %-10s %-6d %-8.1f\n", t.TeamID, truncate(t.TeamName, 20), t.Strategy, t.Picks, t.Added)
	}
	return nil
}

func cmdSave(args []string, log *logrus.Logger) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	cfgPath := fs.String("config", "league.yaml", "Path to league YAML")
	dbPath := fs.String("db", "leagues.db", "Path to the SQLite league store")
	as := fs.String("as", "", "Save under this name instead of the configured one")
	_ = fs.Parse(args)

	ctx := context.Background()
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	l, err := cfg.BuildLeague(ctx, nil, log)
	if err != nil {
		return err
	}
	st, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	snap := l.Snapshot()
	if *as != "" {
		snap.Name = *as
	}
	if err := st.Save(ctx, snap); err != nil {
		return err
	}
	fmt.Printf("Saved league %s (%d players) to %s\n", snap.Name, l.UniverseSize(), *dbPath)
	return nil
}

func cmdExport(args []string, log *logrus.Logger) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	src := sourceFlags(fs)
	outPath := fs.String("out", "results/board.csv", "Output CSV path")
	position := fs.String("position", "", "Limit to one position")
	n := fs.Int("n", 0, "Rows to export (0 = whole pool)")
	auction := fs.Bool("auction", false, "Rank by auction value")
	_ = fs.Parse(args)

	l, err := src.load(context.Background(), log)
	if err != nil {
		return err
	}
	pos, err := parsePosition(*position)
	if err != nil {
		return err
	}
	limit := *n
	if limit <= 0 {
		limit = l.UniverseSize()
	}
	rows := analysis.Board(l, pos, limit, *auction && l.Roster().HasAuction())

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	if err := analysis.WriteBoardCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Wrote %d rows to %s\n", len(rows), *outPath)
	return nil
}

func cmdFetch(args []string, log *logrus.Logger) error {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	cfgPath := fs.String("config", "league.yaml", "Path to league YAML with a web projection source")
	outPath := fs.String("out", "data/projections.json", "Where to write the projections")
	_ = fs.Parse(args)

	cfg, err := config.LoadUnchecked(*cfgPath)
	if err != nil {
		return err
	}
	cfg.Projections.Source = config.SourceWeb
	records, err := cfg.LoadProjections(context.Background(), nil, log)
	if err != nil {
		return err
	}
	if err := data.SaveProjectionsJSON(records, *outPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %d records for %d players to %s\n", len(records), len(data.GroupByPlayer(records)), *outPath)
	return nil
}

func teamRef(raw string) league.TeamRef {
	if id, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return league.TeamID(id)
	}
	return league.TeamNamed(raw)
}

func parsePosition(raw string) (model.Position, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	pos, ok := model.ParsePosition(raw)
	if !ok || !pos.Valued() {
		return "", fmt.Errorf("position %q is not valued", raw)
	}
	return pos, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
