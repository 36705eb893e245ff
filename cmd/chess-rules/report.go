// report.go - Analysis results and their text/JSON rendering
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Report is everything the command found out about one position.
type Report struct {
	FEN    string        `json:"fen"`
	Status string        `json:"status,omitempty"`
	Moves  []string      `json:"moves,omitempty"`
	Perft  *PerftReport  `json:"perft,omitempty"`
	Verify *VerifyReport `json:"verify,omitempty"`
}

// PerftReport holds a perft count and, with -divide, its per-move breakdown.
type PerftReport struct {
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`
}

// VerifyReport summarises a cross-check against reference generators.
type VerifyReport struct {
	Generators []string        `json:"generators"`
	Depth      int             `json:"depth"`
	OK         bool            `json:"ok"`
	Failures   []VerifyFailure `json:"failures,omitempty"`
}

// VerifyFailure is one disagreement at one position.
type VerifyFailure struct {
	FEN    string `json:"fen"`
	Detail string `json:"detail"`
}

// writeReport renders rep in the requested format.
func writeReport(w io.Writer, cfg *config.Config, rep *Report) error {
	if cfg.Output.Format == config.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return writeText(w, cfg, rep)
}

func writeText(w io.Writer, cfg *config.Config, rep *Report) error {
	var sb strings.Builder

	if cfg.Output.ShowFEN {
		fmt.Fprintf(&sb, "FEN: %s\n", rep.FEN)
	}
	if rep.Status != "" {
		fmt.Fprintf(&sb, "Status: %s\n", rep.Status)
	}
	if cfg.Output.ListMoves {
		fmt.Fprintf(&sb, "Moves (%d): %s\n", len(rep.Moves), strings.Join(rep.Moves, " "))
	}
	if p := rep.Perft; p != nil {
		keys := maps.Keys(p.Divide)
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "%s: %d\n", k, p.Divide[k])
		}
		fmt.Fprintf(&sb, "Nodes (depth %d): %d\n", p.Depth, p.Nodes)
	}
	if v := rep.Verify; v != nil {
		result := "ok"
		if !v.OK {
			result = fmt.Sprintf("%d disagreement(s)", len(v.Failures))
		}
		fmt.Fprintf(&sb, "Verify (%s, depth %d): %s\n", strings.Join(v.Generators, ", "), v.Depth, result)
		for _, f := range v.Failures {
			fmt.Fprintf(&sb, "  %s\n    %s\n", f.FEN, f.Detail)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
