// Package viz renders phase portraits in the terminal: a braille dot
// canvas that implements the engine's drawing surface, lipgloss themes,
// and a bubbletea live view.
package viz

import (
	"image/color"
	"math"
	"math/rand"
	"strings"
)

// Braille patterns pack 2x4 dots per terminal cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// starting at unicode offset 0x2800.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface. Coordinates passed to the drawing
// methods are in sub-pixel (dot) space: (Cols*2) x (Rows*4). The canvas
// is monochrome; colors are ignored, and Fade decays trails by
// stochastically dropping dots.
type Canvas struct {
	Cols, Rows int
	cells      [][]rune
	rng        *rand.Rand
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{
		Cols: cols,
		Rows: rows,
		// Fixed seed: decay should look the same across runs of a test.
		rng: rand.New(rand.NewSource(1)),
	}
	c.cells = make([][]rune, rows)
	for i := range c.cells {
		c.cells[i] = make([]rune, cols)
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
		}
	}
	return c
}

// Size returns the drawable area in dots.
func (c *Canvas) Size() (int, int) { return c.Cols * 2, c.Rows * 4 }

func (c *Canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return
	}
	c.cells[row][col] |= dotBits[y%4][x%2]
}

func (c *Canvas) unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return
	}
	c.cells[row][col] &^= dotBits[y%4][x%2]
}

// Clear blanks the whole canvas; the color is ignored on a monochrome
// surface.
func (c *Canvas) Clear(_ color.Color) {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
		}
	}
}

// Line draws with Bresenham's algorithm. Width and color are accepted for
// the Surface contract; a dot is a dot.
func (c *Canvas) Line(fx0, fy0, fx1, fy1, _ float64, _ color.Color) {
	x0, y0 := int(math.Round(fx0)), int(math.Round(fy0))
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))

	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) FillCircle(x, y, r float64, _ color.Color) {
	minX, maxX := int(math.Floor(x-r)), int(math.Ceil(x+r))
	minY, maxY := int(math.Floor(y-r)), int(math.Ceil(y+r))
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			ddx, ddy := float64(px)-x, float64(py)-y
			if ddx*ddx+ddy*ddy <= r*r {
				c.set(px, py)
			}
		}
	}
}

func (c *Canvas) StrokeCircle(x, y, r float64, col color.Color) {
	steps := int(math.Max(8, 2*math.Pi*r))
	for i := 0; i < steps; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(steps)
		a1 := 2 * math.Pi * float64(i+1) / float64(steps)
		c.Line(x+r*math.Cos(a0), y+r*math.Sin(a0), x+r*math.Cos(a1), y+r*math.Sin(a1), 1, col)
	}
}

// Fade approximates exponential trail decay on a 1-bit surface: each lit
// dot survives the pass with probability alpha. Applied once per frame
// this matches the keep-where-alpha-allows compositing of the pixel
// backends in expectation.
func (c *Canvas) Fade(alpha float64) {
	if alpha >= 1 {
		return
	}
	w, h := c.Size()
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			if c.Lit(px, py) && c.rng.Float64() > alpha {
				c.unset(px, py)
			}
		}
	}
}

// Lit reports whether the dot at (x, y) is set, for tests.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return false
	}
	return c.cells[row][col]&dotBits[y%4][x%2] != 0
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
