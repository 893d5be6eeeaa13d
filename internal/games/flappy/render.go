package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdBodyChar  = '●'
	BirdHeadChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// Scale maps world units onto character cells.
type Scale struct {
	CellW, CellH float64 // World units per column / row
	Top          int     // First screen row of the play area
}

// Draw paints the frame into dst. A cell is filled when its center lies
// inside a shape; shapes narrower than a cell still get one cell.
// Nothing outside the play area rows is touched.
func (f Frame) Draw(dst *core.Screen, sc Scale) {
	rows := int(f.Area.H / sc.CellH)

	for _, p := range f.Pipes {
		c0, c1 := span(p.X, p.Right(), sc.CellW)

		// Upper segment: from the top edge down to the gap
		_, topLast := span(0, p.GapTop, sc.CellH)
		for row := 0; row <= topLast && row < rows; row++ {
			ch := PipeChar
			if row == topLast {
				ch = PipeCapTop
			}
			for col := c0; col <= c1; col++ {
				dst.SetColored(col, sc.Top+row, ch, core.ColorGreen)
			}
		}

		// Lower segment: from the gap down to the ground
		bottomFirst, _ := span(p.GapBottom(), f.Area.H, sc.CellH)
		for row := max(bottomFirst, 0); row < rows; row++ {
			ch := PipeChar
			if row == bottomFirst {
				ch = PipeCapBottom
			}
			for col := c0; col <= c1; col++ {
				dst.SetColored(col, sc.Top+row, ch, core.ColorGreen)
			}
		}
	}

	b := f.Bird
	bc0, bc1 := span(b.X, b.X+b.Width, sc.CellW)
	br0, br1 := span(b.Y, b.Y+b.Height, sc.CellH)
	if br0 < 0 {
		// Above the top edge: keep a marker on the first row
		br0, br1 = 0, 0
	}
	for row := br0; row <= br1 && row < rows; row++ {
		for col := bc0; col <= bc1; col++ {
			ch := BirdBodyChar
			if col == bc1 {
				ch = BirdHeadChar
			}
			dst.SetColored(col, sc.Top+row, ch, core.ColorBrightYellow)
		}
	}
}

// span returns the first and last cell whose centers lie in [lo, hi).
// When no center does, it returns the single cell containing the midpoint.
func span(lo, hi, size float64) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size-0.5)) - 1
	if first > last {
		mid := int(math.Floor((lo + hi) / 2 / size))
		return mid, mid
	}
	return first, last
}
