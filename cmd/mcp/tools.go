package main

import (
	"context"
	"encoding/json"
	"fmt"

	"draft-value/internal/league"
	"draft-value/internal/model"
	"draft-value/internal/store"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

type BestAvailableArgs struct {
	Position string `json:"position,omitempty" jsonschema:"qb, rb, wr or te (empty = all)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Number of players (default 10)"`
	Auction  bool   `json:"auction,omitempty" jsonschema:"Rank by auction value"`
}

type BestPickArgs struct {
	TeamID   *int   `json:"team_id,omitempty" jsonschema:"Team id"`
	TeamName string `json:"team_name,omitempty" jsonschema:"Team name (if team_id not provided)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Number of suggestions (default 5)"`
}

type PlayerSearchArgs struct {
	Query string `json:"query" jsonschema:"Name or part of a name (required)"`
	Exact bool   `json:"exact,omitempty" jsonschema:"Require a full case-insensitive name match"`
}

type DraftPlayerArgs struct {
	PlayerID string   `json:"player_id" jsonschema:"Player id (required)"`
	TeamID   *int     `json:"team_id,omitempty" jsonschema:"Team id"`
	TeamName string   `json:"team_name,omitempty" jsonschema:"Team name (if team_id not provided)"`
	Price    *float64 `json:"price,omitempty" jsonschema:"Auction price paid"`
}

type UndraftPlayerArgs struct {
	PlayerID string `json:"player_id" jsonschema:"Player id (required)"`
	TeamID   *int   `json:"team_id,omitempty" jsonschema:"Team id"`
	TeamName string `json:"team_name,omitempty" jsonschema:"Team name (if team_id not provided)"`
}

type ReplacementLevelsArgs struct{}

type playerResult struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	NFLTeam      string         `json:"nfl_team"`
	Position     model.Position `json:"position"`
	TeamID       *int           `json:"team_id,omitempty"`
	SeasonPoints float64        `json:"season_points"`
	VOR          float64        `json:"vor"`
	Value        *float64       `json:"value,omitempty"`
	AuctionValue *float64       `json:"auction_value,omitempty"`
}

type teamResult struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Spent   float64        `json:"spent"`
	Players []playerResult `json:"players"`
}

// draftTools serves one league; draft moves are saved to the store when set.
type draftTools struct {
	league *league.League
	store  *store.Store
	log    *logrus.Logger
}

func (d *draftTools) register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "best_available",
		Description: "Undrafted players ranked by value over replacement or auction value",
	}, d.bestAvailable)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "best_pick",
		Description: "Players that add the most value to one team's roster",
	}, d.bestPick)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "player_search",
		Description: "Find players by name",
	}, d.playerSearch)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "draft_player",
		Description: "Move a player from the pool onto a team",
	}, d.draftPlayer)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "undraft_player",
		Description: "Return a drafted player to the pool, refunding any price",
	}, d.undraftPlayer)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "replacement_levels",
		Description: "Season points of the replacement player at each position",
	}, d.replacementLevels)
}

func (d *draftTools) bestAvailable(ctx context.Context, req *mcp.CallToolRequest, args BestAvailableArgs) (*mcp.CallToolResult, any, error) {
	var pos model.Position
	if args.Position != "" {
		p, ok := model.ParsePosition(args.Position)
		if !ok || !p.Valued() {
			return toolError(fmt.Errorf("position %q is not valued", args.Position)), nil, nil
		}
		pos = p
	}
	if args.Auction && !d.league.Roster().HasAuction() {
		return toolError(fmt.Errorf("league has no auction budget")), nil, nil
	}
	limit := args.Limit
	if limit <= 0 {
		limit = 10
	}
	return toolJSON(d.ranked(d.league.BestAvailable(pos, limit, args.Auction)))
}

func (d *draftTools) bestPick(ctx context.Context, req *mcp.CallToolRequest, args BestPickArgs) (*mcp.CallToolResult, any, error) {
	ref, err := teamRef(args.TeamID, args.TeamName)
	if err != nil {
		return toolError(err), nil, nil
	}
	t, picks, err := d.league.BestPick(ref, args.Limit)
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(map[string]any{"team": d.team(t), "picks": d.ranked(picks)})
}

func (d *draftTools) playerSearch(ctx context.Context, req *mcp.CallToolRequest, args PlayerSearchArgs) (*mcp.CallToolResult, any, error) {
	if args.Query == "" {
		return toolError(fmt.Errorf("query is required")), nil, nil
	}
	if args.Exact {
		p, err := d.league.PlayerByName(args.Query)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON([]playerResult{d.player(p)})
	}
	matches, err := d.league.PlayerFuzzyMatch(args.Query)
	if err != nil {
		return toolError(err), nil, nil
	}
	out := make([]playerResult, 0, len(matches))
	for _, p := range matches {
		out = append(out, d.player(p))
	}
	return toolJSON(out)
}

func (d *draftTools) draftPlayer(ctx context.Context, req *mcp.CallToolRequest, args DraftPlayerArgs) (*mcp.CallToolResult, any, error) {
	ref, err := teamRef(args.TeamID, args.TeamName)
	if err != nil {
		return toolError(err), nil, nil
	}
	if args.Price != nil && *args.Price < 0 {
		return toolError(fmt.Errorf("price must be >= 0")), nil, nil
	}
	t, err := d.league.Draft(args.PlayerID, ref, args.Price)
	if err != nil {
		return toolError(err), nil, nil
	}
	if err := d.save(ctx); err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(d.team(t))
}

func (d *draftTools) undraftPlayer(ctx context.Context, req *mcp.CallToolRequest, args UndraftPlayerArgs) (*mcp.CallToolResult, any, error) {
	ref, err := teamRef(args.TeamID, args.TeamName)
	if err != nil {
		return toolError(err), nil, nil
	}
	t, err := d.league.Undraft(args.PlayerID, ref)
	if err != nil {
		return toolError(err), nil, nil
	}
	if err := d.save(ctx); err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(d.team(t))
}

func (d *draftTools) replacementLevels(ctx context.Context, req *mcp.CallToolRequest, args ReplacementLevelsArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(d.league.ReplacementLevels())
}

func (d *draftTools) save(ctx context.Context) error {
	if d.store == nil {
		return nil
	}
	if err := d.store.Save(ctx, d.league.Snapshot()); err != nil {
		return fmt.Errorf("save league: %w", err)
	}
	d.log.WithField("league", d.league.Name()).Debug("League saved")
	return nil
}

func teamRef(id *int, name string) (league.TeamRef, error) {
	switch {
	case id != nil:
		return league.TeamID(*id), nil
	case name != "":
		return league.TeamNamed(name), nil
	default:
		return league.TeamRef{}, fmt.Errorf("team_id or team_name is required")
	}
}

func (d *draftTools) player(p *model.Player) playerResult {
	r := playerResult{
		ID:           p.ID,
		Name:         p.Name,
		NFLTeam:      p.NFLTeam,
		Position:     p.Position,
		SeasonPoints: d.league.SeasonPoints(p),
		VOR:          d.league.ValueOverReplacement(p, false),
	}
	if id, ok := d.league.DraftedBy(p.ID); ok {
		r.TeamID = &id
	}
	if v, ok := d.league.AuctionValue(p); ok {
		r.AuctionValue = &v
	}
	return r
}

func (d *draftTools) ranked(ranked []league.Ranked) []playerResult {
	out := make([]playerResult, 0, len(ranked))
	for _, r := range ranked {
		pr := d.player(r.Player)
		v := r.Value
		pr.Value = &v
		out = append(out, pr)
	}
	return out
}

func (d *draftTools) team(t *league.Team) teamResult {
	out := teamResult{ID: t.ID, Name: t.DisplayName(), Spent: t.Spent(), Players: []playerResult{}}
	for _, p := range t.Players() {
		out.Players = append(out.Players, d.player(p))
	}
	return out
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)}},
	}
}
