package analysis

import (
	"encoding/csv"
	"io"
	"strconv"

	"draft-value/internal/league"
	"draft-value/internal/model"
)

// BoardRow is one line of the best-available board.
type BoardRow struct {
	Rank         int            `json:"rank"`
	PlayerID     string         `json:"player_id"`
	Name         string         `json:"name"`
	NFLTeam      string         `json:"nfl_team"`
	Position     model.Position `json:"position"`
	SeasonPoints float64        `json:"season_points"`
	VOR          float64        `json:"vor"`
	AuctionValue *float64       `json:"auction_value,omitempty"`
}

// Board ranks the available pool by value over replacement (or auction value
// when auction is set) and attaches points and prices.
func Board(l *league.League, pos model.Position, n int, auction bool) []BoardRow {
	ranked := l.BestAvailable(pos, n, auction)
	rows := make([]BoardRow, 0, len(ranked))
	for i, r := range ranked {
		row := BoardRow{
			Rank:         i + 1,
			PlayerID:     r.Player.ID,
			Name:         r.Player.Name,
			NFLTeam:      r.Player.NFLTeam,
			Position:     r.Player.Position,
			SeasonPoints: l.SeasonPoints(r.Player),
			VOR:          l.ValueOverReplacement(r.Player, false),
		}
		if v, ok := l.AuctionValue(r.Player); ok {
			row.AuctionValue = &v
		}
		rows = append(rows, row)
	}
	return rows
}

func WriteBoardCSV(out io.Writer, rows []BoardRow) error {
	w := csv.NewWriter(out)
	header := []string{"rank", "player_id", "player", "tm", "position", "season_points", "vor", "auction_value"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		price := ""
		if r.AuctionValue != nil {
			price = fmtFloat(*r.AuctionValue)
		}
		row := []string{
			strconv.Itoa(r.Rank),
			r.PlayerID,
			r.Name,
			r.NFLTeam,
			string(r.Position),
			fmtFloat(r.SeasonPoints),
			fmtFloat(r.VOR),
			price,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
