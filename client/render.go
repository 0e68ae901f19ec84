package client

import (
	"blockdrop/tetris"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/template"
)

const (
	// ASCII colors.
	Cyan    = "36"
	Blue    = "34"
	Orange  = "38;5;214"
	Yellow  = "33"
	Green   = "32"
	Red     = "31"
	Magenta = "35"

	resetPos  = "\033[H"  // Reset cursor position to 0,0
	clearLine = "\033[K"  // Clear to the end of the line
	clearAll  = "\033[2J" // Clear the whole screen

	hoverRows = 4
	emptyCell = "  "
	ghostCell = "[]"
)

//go:embed "layout.tmpl"
var layout string

var colorMap = map[tetris.Shape]string{
	tetris.I: Cyan,
	tetris.J: Blue,
	tetris.L: Orange,
	tetris.O: Yellow,
	tetris.S: Green,
	tetris.Z: Red,
	tetris.T: Magenta,
}

// view is everything one frame shows.
type view struct {
	State    *tetris.State
	Column   int
	Rotation tetris.Rotation
	NoGhost  bool
	Remote   bool
	Message  string
}

type renderer interface {
	draw(*view)
	clear()
}

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
}

func newRender(w io.Writer, l *slog.Logger) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return &render{writer: w, logger: l, template: tmp}, nil
}

func (r *render) draw(v *view) {
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, v); err != nil {
		r.logger.Error("unable to execute template", slog.String("error", err.Error()))
	}
}

func (r *render) clear() {
	fmt.Fprint(r.writer, clearAll)
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"border": border,
		"hover":  hover,
		"board":  board,
		"side":   side,
	}

	// the console is raw so new lines need a carriage return. Lines are
	// cleared to the end so shorter messages don't leave leftovers.
	l := strings.ReplaceAll(layout, "\n", clearLine+"\r\n")
	l = strings.ReplaceAll(l, "BLOCKDROP", "\033[1mBLOCKDROP\033[0m")
	return template.New("layout").Funcs(funcMap).Parse(l)
}

func paint(s tetris.Shape) string {
	c, ok := colorMap[s]
	if !ok {
		return emptyCell
	}
	return fmt.Sprintf("\x1b[7m\x1b[%sm[]\x1b[0m", c)
}

func border(v *view) string {
	return strings.Repeat("-", v.State.Width*len(emptyCell))
}

// hover draws the current piece above the board at the selected column.
func hover(v *view) []string {
	grid := make([][]string, hoverRows)
	for i := range grid {
		grid[i] = make([]string, v.State.Width)
		for j := range grid[i] {
			grid[i][j] = emptyCell
		}
	}
	if !v.State.GameOver && v.State.Current.Valid() {
		m := tetris.Rotate(v.State.Current.Matrix(), v.Rotation)
		col := min(v.Column, maxColumn(v.State, v.Rotation))
		top := max(hoverRows-m.Height(), 0)
		for ir, row := range m {
			for ic, c := range row {
				if c == 0 || top+ir >= hoverRows || col+ic >= v.State.Width {
					continue
				}
				grid[top+ir][col+ic] = paint(v.State.Current)
			}
		}
	}
	return join(grid)
}

// board draws the stack and, unless disabled, the ghost of where the
// current piece lands.
func board(v *view) []string {
	grid := make([][]string, len(v.State.Rows))
	for i, row := range v.State.Rows {
		grid[i] = make([]string, len(row))
		for j, s := range row {
			grid[i][j] = paint(s)
		}
	}
	if !v.NoGhost {
		if p, err := ghost(v.State, v.Column, v.Rotation); err == nil {
			for _, c := range p.Cells() {
				grid[c[1]][c[0]] = ghostCell
			}
		}
	}
	return join(grid)
}

// side returns one line per board row holding the next pieces.
func side(v *view) []string {
	lines := make([]string, len(v.State.Rows))
	if len(lines) == 0 {
		return lines
	}
	lines[0] = "   next"
	for i, s := range v.State.Preview {
		for ir, row := range s.Matrix() {
			n := 2 + i*3 + ir
			if n >= len(lines) {
				return lines
			}
			var b strings.Builder
			b.WriteString("   ")
			for _, c := range row {
				if c == 0 {
					b.WriteString(emptyCell)
					continue
				}
				b.WriteString(paint(s))
			}
			lines[n] = b.String()
		}
	}
	return lines
}

func join(grid [][]string) []string {
	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = strings.Join(row, "")
	}
	return out
}
