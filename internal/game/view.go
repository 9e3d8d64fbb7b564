package game

import "strings"

// View is a read-only snapshot of a board, as served over HTTP and read by
// the solver's board adapters. Solution is empty until the game ends.
type View struct {
	GameID      string `json:"gameId"`
	Length      int    `json:"length"`
	MaxAttempts int    `json:"maxAttempts"`
	Preset      string `json:"preset"` // "l....", dots for unknown cells
	Rows        []Row  `json:"rows"`
	Typed       string `json:"typed"`
	Rejected    bool   `json:"rejected"`
	Finished    bool   `json:"finished"`
	Won         bool   `json:"won"`
	Lost        bool   `json:"lost"`
	State       string `json:"state"`
	Solution    string `json:"solution,omitempty"`
}

// View snapshots g. Rows are copied.
func (g *Game) View() View {
	preset := []rune(strings.Repeat(".", g.Length))
	for pos, r := range g.Preset() {
		preset[pos] = r
	}
	rows := make([]Row, len(g.Rows))
	for i, r := range g.Rows {
		rows[i] = Row{Word: r.Word, Marks: append([]Mark(nil), r.Marks...)}
	}
	return View{
		GameID:      g.ID,
		Length:      g.Length,
		MaxAttempts: g.MaxAttempts,
		Preset:      string(preset),
		Rows:        rows,
		Typed:       string(g.Typed),
		Rejected:    g.Rejected,
		Finished:    g.Finished,
		Won:         g.Won,
		Lost:        g.Finished && !g.Won,
		State:       g.State(),
		Solution:    g.Solution(),
	}
}
