// apps/go-solver/internal/render/render.go
//
// Terminal output for the CLI.
//   - Row:        one accepted row, letters coloured by status
//                 (green well placed, yellow misplaced, gray absent).
//   - Transcript: every row of a session plus its outcome line.
//   - Summary:    totals over many sessions (bench).
//
// Colours come from TwiN/go-color; Plain disables them for logs and pipes.

package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/motus/apps/go-solver/internal/session"
	"github.com/robalobadob/motus/apps/go-solver/internal/solver"
	"github.com/robalobadob/motus/apps/go-solver/internal/store"
)

// Plain turns colouring off when true.
var Plain = false

var statusColor = map[solver.Status]string{
	solver.WellPlaced: color.Green,
	solver.Misplaced:  color.Yellow,
	solver.Absent:     color.Gray,
}

// Row renders cells as spaced capitals, e.g. "L A P I N".
func Row(cells []solver.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		s := string(unicode.ToUpper(c.Letter))
		if !Plain {
			s = color.Ize(statusColor[c.Status], s)
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

// Transcript renders a finished session.
func Transcript(res session.Result) string {
	var b strings.Builder
	for i, r := range res.Rows {
		fmt.Fprintf(&b, "%2d  %s\n", i+1, Row(r.Cells()))
	}
	for _, w := range res.Rejected {
		fmt.Fprintf(&b, "    %s (rejected)\n", strings.ToUpper(w))
	}

	line := fmt.Sprintf("%s in %d attempt(s)", res.Outcome, res.Attempts)
	if res.Solution != "" {
		line += ": " + strings.ToUpper(res.Solution)
	}
	if !Plain {
		c := color.Red
		switch res.Outcome {
		case session.OutcomeWon:
			c = color.Green
		case session.OutcomeExhausted:
			c = color.Yellow
		}
		line = color.Ize(color.Bold, color.Ize(c, line))
	}
	b.WriteString(line)
	b.WriteString("\n")
	return b.String()
}

// Summary renders bench totals.
func Summary(s store.Summary) string {
	rate := 0.0
	if s.Sessions > 0 {
		rate = 100 * float64(s.Won) / float64(s.Sessions)
	}
	return fmt.Sprintf("sessions %d  won %d (%.1f%%)  lost %d  exhausted %d  avg attempts %.2f\n",
		s.Sessions, s.Won, rate, s.Lost, s.Exhausted, s.AvgAttempts)
}
