// Package paint rasterizes a bar.Scene into terminal cells styled with
// lipgloss. One horizontal unit is one column; partial cells use eighth
// blocks so a fill grows smoothly between columns.
package paint

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/pablasso/pbar/internal/bar"
	"github.com/pablasso/pbar/internal/colors"
)

const (
	fullBlock = '█'
	capLeft   = '◖'
	capRight  = '◗'
)

// leftEighths[i] covers i/8 of a cell from the left.
var leftEighths = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// Options tunes how units map to cells.
type Options struct {
	// CellHeight is the number of vertical units drawn as one row.
	CellHeight float64
	// Backdrop is composited under translucent colors.
	Backdrop string
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{CellHeight: 8, Backdrop: "#000000"}
}

// Painter turns scenes into strings.
type Painter struct {
	opts     Options
	backdrop colorful.Color
}

// New creates a Painter. Zero fields in opts take their defaults.
func New(opts Options) (*Painter, error) {
	def := DefaultOptions()
	if opts.CellHeight <= 0 {
		opts.CellHeight = def.CellHeight
	}
	if opts.Backdrop == "" {
		opts.Backdrop = def.Backdrop
	}
	bd, err := colors.Parse(opts.Backdrop)
	if err != nil {
		return nil, fmt.Errorf("backdrop: %w", err)
	}
	return &Painter{opts: opts, backdrop: bd.Color}, nil
}

type cell struct {
	ch     rune
	fg, bg *colorful.Color
	bold   bool
	// skip marks the second column of a wide rune.
	skip bool
}

// Rows returns how many terminal rows a bar of the given height occupies,
// border excluded.
func (p *Painter) Rows(height float64) int {
	return max(1, int(math.Ceil(height/p.opts.CellHeight)))
}

// Paint draws the scene. An empty string means there is nothing to draw yet,
// typically because the bar has not been measured.
func (p *Painter) Paint(s bar.Scene) (string, error) {
	cols := int(math.Round(s.Width))
	edge := 0
	if s.Border != nil {
		edge = 1
	}
	inner := cols - 2*edge
	if inner <= 0 {
		return "", nil
	}

	track, err := p.color(s.Track.Color)
	if err != nil {
		return "", fmt.Errorf("unfilled color: %w", err)
	}
	fill, err := p.color(s.Fill.Color)
	if err != nil {
		return "", fmt.Errorf("color: %w", err)
	}

	scale := 1.0
	if s.Track.Width > 0 {
		scale = float64(inner) / s.Track.Width
	}

	rows := p.Rows(s.Track.Height)
	line := make([]cell, inner)
	x0 := (s.Fill.X - s.Track.X) * scale
	x1 := x0 + s.Fill.Width*scale
	for c := range line {
		line[c] = fillCell(c, x0, x1, track, fill)
	}
	if s.Fill.Radius > 0 {
		roundCaps(line, x0, x1, track, fill)
	}

	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = append([]cell(nil), line...)
	}

	if s.Text != nil && s.Text.Content != "" {
		fg, err := p.color(s.Text.Color)
		if err != nil {
			return "", fmt.Errorf("text color: %w", err)
		}
		row := min(rows-1, int((s.Text.Y-s.Track.Y)/p.opts.CellHeight))
		overlayText(grid[max(0, row)], *s.Text, (s.Text.X-s.Track.X)*scale, fg)
	}

	out := make([]string, rows)
	for r := range grid {
		out[r] = renderRow(grid[r])
	}
	body := strings.Join(out, "\n")

	if s.Border == nil {
		return body, nil
	}
	border := lipgloss.NormalBorder()
	if s.Border.Radius > 0 {
		border = lipgloss.RoundedBorder()
	}
	style := lipgloss.NewStyle().Border(border)
	if bc, err := p.color(s.Border.Color); err != nil {
		return "", fmt.Errorf("border color: %w", err)
	} else if bc != nil {
		style = style.BorderForeground(lipgloss.Color(bc.Hex()))
	}
	return style.Render(body), nil
}

// color parses c and composites it over the backdrop. Transparent colors
// return nil.
func (p *Painter) color(s string) (*colorful.Color, error) {
	c, err := colors.Parse(s)
	if err != nil {
		return nil, err
	}
	if c.Transparent() {
		return nil, nil
	}
	out := c.Over(p.backdrop)
	return &out, nil
}

func fillCell(c int, x0, x1 float64, track, fill *colorful.Color) cell {
	lo, hi := float64(c), float64(c+1)
	cover := math.Min(hi, x1) - math.Max(lo, x0)
	switch {
	case fill == nil || cover <= 0:
		return cell{ch: ' ', bg: track}
	case cover >= 1-1e-9:
		return cell{ch: fullBlock, fg: fill, bg: track}
	case x0 > lo:
		// fill starts inside this cell; only the half block exists for
		// right-aligned partials
		if cover < 0.5 {
			return cell{ch: '▕', fg: fill, bg: track}
		}
		return cell{ch: '▐', fg: fill, bg: track}
	default:
		return cell{ch: leftEighths[int(math.Round(cover*8))], fg: fill, bg: track}
	}
}

// roundCaps replaces the outer full cells of a fill with half discs.
func roundCaps(line []cell, x0, x1 float64, track, fill *colorful.Color) {
	first := int(math.Ceil(x0 - 1e-9))
	last := int(math.Floor(x1+1e-9)) - 1
	if fill == nil || last-first < 1 || first < 0 || last >= len(line) {
		return
	}
	line[first] = cell{ch: capLeft, fg: fill, bg: track}
	if line[last].ch == fullBlock && (last+1 >= len(line) || line[last+1].fg == nil) {
		line[last] = cell{ch: capRight, fg: fill, bg: track}
	}
}

func overlayText(line []cell, t bar.Text, x float64, fg *colorful.Color) {
	text := runewidth.Truncate(t.Content, len(line), "")
	w := runewidth.StringWidth(text)

	start := x
	switch t.Anchor {
	case bar.AlignMiddle:
		start = x - float64(w)/2
	case bar.AlignEnd:
		start = x - float64(w)
	}
	col := int(math.Round(start))
	col = max(0, min(len(line)-w, col))

	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if col+rw > len(line) {
			break
		}
		under := line[col]
		bg := under.bg
		if under.fg != nil && under.ch != ' ' {
			// text sits on the fill; take the fill as background
			bg = under.fg
		}
		line[col] = cell{ch: r, fg: fg, bg: bg, bold: t.Bold}
		for k := 1; k < rw; k++ {
			line[col+k] = cell{skip: true}
		}
		col += rw
	}
}

func renderRow(line []cell) string {
	var b strings.Builder
	var run strings.Builder
	var cur *cell
	flush := func() {
		if cur == nil || run.Len() == 0 {
			return
		}
		b.WriteString(styleFor(*cur).Render(run.String()))
		run.Reset()
	}
	for i := range line {
		c := line[i]
		if c.skip {
			continue
		}
		if cur == nil || !sameStyle(*cur, c) {
			flush()
			cur = &line[i]
		}
		run.WriteRune(c.ch)
	}
	flush()
	return b.String()
}

func sameStyle(a, b cell) bool {
	return sameColor(a.fg, b.fg) && sameColor(a.bg, b.bg) && a.bold == b.bold
}

func sameColor(a, b *colorful.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Hex() == b.Hex()
}

func styleFor(c cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.fg != nil {
		st = st.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if c.bg != nil {
		st = st.Background(lipgloss.Color(c.bg.Hex()))
	}
	if c.bold {
		st = st.Bold(true)
	}
	return st
}
