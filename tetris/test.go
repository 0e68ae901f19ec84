package tetris

// Sequence is a Generator that replays a fixed list of shapes forever.
type Sequence struct {
	shapes []Shape
	pos    int
}

func NewSequence(shapes ...Shape) *Sequence {
	if len(shapes) == 0 {
		shapes = Shapes()
	}
	return &Sequence{shapes: shapes}
}

func (s *Sequence) Next() Shape {
	v := s.shapes[s.pos%len(s.shapes)]
	s.pos++
	return v
}

func (s *Sequence) Peek(n int) []Shape {
	if n <= 0 {
		return nil
	}
	out := make([]Shape, n)
	for i := range out {
		out[i] = s.shapes[(s.pos+i)%len(s.shapes)]
	}
	return out
}

// NewTestGame creates a default sized game dealing the given shapes in order.
func NewTestGame(shapes ...Shape) *Game {
	g, err := NewGame(Options{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Generator: NewSequence(shapes...),
		Preview:   DefaultPreview,
		Layout:    Layout{CellSize: 8},
	})
	if err != nil {
		panic(err)
	}
	return g
}

// FillRow occupies every cell of row with s, leaving the columns in skip free.
func FillRow(b *Board, row int, s Shape, skip ...int) {
	for col := range b.Width() {
		free := false
		for _, k := range skip {
			if k == col {
				free = true
			}
		}
		if free {
			continue
		}
		if _, err := b.Set(col, row, s); err != nil {
			panic(err)
		}
	}
}
