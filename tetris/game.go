package tetris

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
)

const DefaultPreview = 5

type Options struct {
	Width, Height int
	// Generator defaults to a seven-bag seeded with Seed.
	Generator Generator
	Seed      uint64
	// Preview is how many upcoming pieces State reports.
	Preview int
	Layout  Layout
}

// Game holds one session: the board, the piece generator and the piece
// waiting to be placed. It is not safe for concurrent use.
type Game struct {
	board     *Board
	generator Generator
	preview   int

	current  Shape
	gameOver bool
	placed   int
	lines    int
	counts   *intmap.Map[Shape, int]
}

// Result describes one successful placement.
type Result struct {
	Placement
	Cleared int
}

// Stats are running totals for the session.
type Stats struct {
	Placed int
	Lines  int
	// Counts holds how many pieces of each shape were placed.
	Counts map[Shape]int
}

// State is a copy of the session that's safe to hand to a renderer.
type State struct {
	Width, Height int
	Rows          [][]Shape
	Current       Shape
	Preview       []Shape
	GameOver      bool
	Stats         Stats
}

func NewGame(o Options) (*Game, error) {
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = DefaultWidth, DefaultHeight
	}
	b, err := NewBoard(o.Width, o.Height)
	if err != nil {
		return nil, err
	}
	b.Layout = o.Layout
	if o.Generator == nil {
		o.Generator = NewSevenBag(o.Seed)
	}
	if o.Preview < 0 {
		o.Preview = 0
	}
	g := &Game{
		board:     b,
		generator: o.Generator,
		preview:   o.Preview,
		counts:    intmap.New[Shape, int](BagSize),
	}
	g.current = g.generator.Next()
	return g, nil
}

func (g *Game) Board() *Board    { return g.board }
func (g *Game) Current() Shape   { return g.current }
func (g *Game) GameOver() bool   { return g.gameOver }
func (g *Game) Preview() []Shape { return g.generator.Peek(g.preview) }

// Place drops the current piece at column with rotation r, clears any
// completed rows and draws the next piece. A piece that can't enter the
// board ends the game.
func (g *Game) Place(column int, r Rotation) (Result, error) {
	if g.gameOver {
		return Result{}, ErrGameOver
	}
	p, err := g.board.Put(column, r, g.current)
	if err != nil {
		if errors.Is(err, ErrBlockedOut) {
			g.gameOver = true
			return Result{}, fmt.Errorf("%w: %w", ErrGameOver, err)
		}
		return Result{}, err
	}

	res := Result{Placement: p, Cleared: g.board.ClearLines()}
	g.placed++
	g.lines += res.Cleared
	n, _ := g.counts.Get(p.Shape)
	g.counts.Put(p.Shape, n+1)
	g.current = g.generator.Next()
	return res, nil
}

// Click places the current piece from a pointer position: the column
// under the pointer is the drop column and the row picks the rotation
// (see RotationForRow). It reports false when the pointer selects
// nothing.
func (g *Game) Click(x, y float64) (Result, bool, error) {
	col, row, ok := g.board.CellAtPixel(x, y)
	if !ok {
		return Result{}, false, nil
	}
	r, ok := g.board.RestingRotationForRow(row)
	if !ok {
		return Result{}, false, nil
	}
	res, err := g.Place(col, r)
	if err != nil {
		return Result{}, false, err
	}
	return res, true, nil
}

// Ghost returns where the current piece would land without placing it.
func (g *Game) Ghost(column int, r Rotation) (Placement, error) {
	if g.gameOver {
		return Placement{}, ErrGameOver
	}
	return g.board.Resolve(column, r, g.current)
}

func (g *Game) Stats() Stats {
	s := Stats{
		Placed: g.placed,
		Lines:  g.lines,
		Counts: make(map[Shape]int, g.counts.Len()),
	}
	g.counts.ForEach(func(k Shape, v int) bool {
		s.Counts[k] = v
		return true
	})
	return s
}

// State returns a copy of the current session.
func (g *Game) State() *State {
	return &State{
		Width:    g.board.Width(),
		Height:   g.board.Height(),
		Rows:     g.board.Rows(),
		Current:  g.current,
		Preview:  g.Preview(),
		GameOver: g.gameOver,
		Stats:    g.Stats(),
	}
}

// Reset empties the board and clears the totals. The generator keeps
// its sequence and the current piece is kept.
func (g *Game) Reset() {
	g.board.Reset()
	g.gameOver = false
	g.placed = 0
	g.lines = 0
	g.counts.Clear()
}
