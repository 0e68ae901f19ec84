package proto

import (
	"blockdrop/tetris"
	"fmt"
)

// FromState converts a game snapshot to its wire form.
func FromState(id string, st *tetris.State) *Snapshot {
	out := &Snapshot{
		SessionId:  id,
		Width:      int32(st.Width),  //nolint:gosec
		Height:     int32(st.Height), //nolint:gosec
		Rows:       make([]*Row, len(st.Rows)),
		Current:    st.Current.String(),
		IsGameOver: st.GameOver,
		Placed:     int32(st.Stats.Placed), //nolint:gosec
		LinesClear: int32(st.Stats.Lines),  //nolint:gosec
	}
	for i, r := range st.Rows {
		out.Rows[i] = &Row{Cells: make([]string, len(r))}
		for j, c := range r {
			out.Rows[i].Cells[j] = c.String()
		}
	}
	for _, s := range st.Preview {
		out.Preview = append(out.Preview, s.String())
	}
	return out
}

// FromResult converts a placement to its wire form.
func FromResult(r tetris.Result) *Placement {
	return &Placement{
		Shape:    r.Shape.String(),
		Rotation: r.Rotation.String(),
		Column:   int32(r.Column),  //nolint:gosec
		Row:      int32(r.Row),     //nolint:gosec
		Cleared:  int32(r.Cleared), //nolint:gosec
	}
}

// ToState converts a wire snapshot back to a game snapshot. Per shape
// counts are not carried on the wire.
func (x *Snapshot) ToState() (*tetris.State, error) {
	if x == nil {
		return nil, fmt.Errorf("nil snapshot")
	}
	st := &tetris.State{
		Width:    int(x.Width),
		Height:   int(x.Height),
		Rows:     make([][]tetris.Shape, len(x.Rows)),
		GameOver: x.IsGameOver,
		Stats: tetris.Stats{
			Placed: int(x.Placed),
			Lines:  int(x.LinesClear),
		},
	}
	var err error
	for i, r := range x.Rows {
		if r == nil {
			st.Rows[i] = make([]tetris.Shape, x.Width)
			continue
		}
		st.Rows[i] = make([]tetris.Shape, len(r.Cells))
		for j, c := range r.Cells {
			if st.Rows[i][j], err = tetris.ParseShape(c); err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
		}
	}
	if st.Current, err = tetris.ParseShape(x.Current); err != nil {
		return nil, fmt.Errorf("current piece: %w", err)
	}
	for _, p := range x.Preview {
		s, err := tetris.ParseShape(p)
		if err != nil {
			return nil, fmt.Errorf("preview: %w", err)
		}
		st.Preview = append(st.Preview, s)
	}
	return st, nil
}
