package mockdraft

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, ledger []PickRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteLedger(f, ledger)
}

func WriteLedger(out io.Writer, ledger []PickRow) error {
	w := csv.NewWriter(out)
	header := []string{
		"pick",
		"round",
		"team_id",
		"team",
		"strategy",
		"player_id",
		"player",
		"position",
		"vor",
		"added",
		"cum_added",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Pick + 1),
			strconv.Itoa(r.Round + 1),
			strconv.Itoa(r.TeamID),
			r.TeamName,
			r.Strategy,
			r.PlayerID,
			r.Player,
			string(r.Position),
			fmtFloat(r.VOR),
			fmtFloat(r.Added),
			fmtFloat(r.CumAdded),
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
