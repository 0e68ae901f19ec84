package tetris

import (
	"fmt"
	"math/rand/v2"
)

// Generator produces the sequence of pieces a game is played with.
type Generator interface {
	// Next consumes and returns the upcoming piece.
	Next() Shape
	// Peek returns the next n pieces without consuming them.
	Peek(n int) []Shape
}

const (
	GeneratorSevenBag = "sevenbag"
	GeneratorRandom   = "random"
)

// NewGenerator builds a generator by name. The same seed always yields
// the same sequence.
func NewGenerator(kind string, seed uint64) (Generator, error) {
	switch kind {
	case GeneratorSevenBag, "":
		return NewSevenBag(seed), nil
	case GeneratorRandom:
		return NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", kind)
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SevenBag deals pieces from shuffled bags holding each kind once, so
// every kind shows up once per 7 draws and the same kind is never more
// than 12 draws apart.
type SevenBag struct {
	rng   *rand.Rand
	queue []Shape
}

func NewSevenBag(seed uint64) *SevenBag {
	g := &SevenBag{rng: newRand(seed)}
	g.queue = make([]Shape, 0, 2*BagSize)
	g.fill(2 * BagSize)
	return g
}

func (g *SevenBag) bag() []Shape {
	bag := Shapes()
	g.rng.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })
	return bag
}

// fill appends whole bags until at least n pieces are queued. Bags are
// only ever appended, so filling early doesn't change the sequence.
func (g *SevenBag) fill(n int) {
	for len(g.queue) < n {
		g.queue = append(g.queue, g.bag()...)
	}
}

func (g *SevenBag) Next() Shape {
	s := g.queue[0]
	g.queue = g.queue[1:]
	// keep the upcoming bag queued behind whatever is left of the current one.
	g.fill(BagSize + 1)
	return s
}

func (g *SevenBag) Peek(n int) []Shape {
	if n <= 0 {
		return nil
	}
	g.fill(n)
	out := make([]Shape, n)
	copy(out, g.queue)
	return out
}

// Random draws every piece independently.
type Random struct {
	rng   *rand.Rand
	queue []Shape
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: newRand(seed)}
}

func (g *Random) fill(n int) {
	shapes := Shapes()
	for len(g.queue) < n {
		g.queue = append(g.queue, shapes[g.rng.IntN(len(shapes))])
	}
}

func (g *Random) Next() Shape {
	g.fill(1)
	s := g.queue[0]
	g.queue = g.queue[1:]
	return s
}

func (g *Random) Peek(n int) []Shape {
	if n <= 0 {
		return nil
	}
	g.fill(n)
	out := make([]Shape, n)
	copy(out, g.queue)
	return out
}
