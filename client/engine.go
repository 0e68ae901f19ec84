package client

import (
	"blockdrop/tetris"
	"errors"
)

// engine is the game the client drives, either in process or on a
// server.
type engine interface {
	State() (*tetris.State, error)
	Place(column int, r tetris.Rotation) error
	Reset() error
	Close() error
}

type localEngine struct {
	game *tetris.Game
}

func newLocalEngine(o tetris.Options) (*localEngine, error) {
	g, err := tetris.NewGame(o)
	if err != nil {
		return nil, err
	}
	return &localEngine{game: g}, nil
}

func (l *localEngine) State() (*tetris.State, error) { return l.game.State(), nil }
func (l *localEngine) Close() error                  { return nil }

func (l *localEngine) Place(column int, r tetris.Rotation) error {
	_, err := l.game.Place(column, r)
	return err
}

func (l *localEngine) Reset() error {
	l.game.Reset()
	return nil
}

// ghost resolves where the state's current piece lands.
func ghost(st *tetris.State, column int, r tetris.Rotation) (tetris.Placement, error) {
	if st.GameOver {
		return tetris.Placement{}, tetris.ErrGameOver
	}
	b, err := tetris.NewBoard(st.Width, st.Height)
	if err != nil {
		return tetris.Placement{}, err
	}
	for row, cells := range st.Rows {
		for col, s := range cells {
			if s == tetris.Empty {
				continue
			}
			if _, err := b.Set(col, row, s); err != nil {
				return tetris.Placement{}, err
			}
		}
	}
	return b.Resolve(column, r, st.Current)
}

// maxColumn is the right-most column the piece can be dropped at
// without being pushed back.
func maxColumn(st *tetris.State, r tetris.Rotation) int {
	w := tetris.Rotate(st.Current.Matrix(), r).Width()
	return max(st.Width-w, 0)
}

var errNoState = errors.New("no game state")
