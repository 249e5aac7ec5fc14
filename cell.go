package facetgrid

import (
	"fmt"

	"github.com/vdobler/facetgrid/data"
)

// A GroupID identifies the observations belonging to one facet: those
// whose row and col variables have the levels Row and Col. Unused
// dimensions have the empty level.
type GroupID struct {
	Row, Col string
}

func (id GroupID) String() string {
	switch {
	case id.Row == "" && id.Col == "":
		return "()"
	case id.Row == "":
		return fmt.Sprintf("(col=%s)", id.Col)
	case id.Col == "":
		return fmt.Sprintf("(row=%s)", id.Row)
	}
	return fmt.Sprintf("(row=%s, col=%s)", id.Row, id.Col)
}

// A Cell is one panel of a grid.
type Cell struct {
	Row, Col int // position in the panel array
	ID       GroupID

	// Index lists the observations drawn in this cell in source
	// order. It may be empty.
	Index []int

	// Empty marks trailing cells of a wrapped layout which carry no
	// level at all. They are hidden.
	Empty bool

	xlabel, ylabel string
	ownY           bool // y axis never shared, e.g. pair grid diagonals
	drawn          bool
	grid           *Grid
}

// Surface returns the drawing surface of c.
func (c *Cell) Surface() Surface {
	return c.grid.renderer.Surface(c.Row, c.Col)
}

// A Layout is the result of resolving the faceting variables of a
// data source: the level sets and the panel array.
type Layout struct {
	RowVar, ColVar string
	Rows, Cols     LevelSet // nil if unused
	NRow, NCol     int
	Wrap           int // column wrap in effect, 0 if none
	Cells          [][]*Cell
}

// Resolve computes the layout of a facet grid on src. It performs no
// drawing and returns equal layouts for equal input.
func Resolve(src data.Source, opts Options) (*Layout, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	rowVar, rows, err := bindLevels(src, "row", opts.Row, opts.RowOrder, opts.MaxLevels)
	if err != nil {
		return nil, err
	}
	colVar, cols, err := bindLevels(src, "col", opts.Col, opts.ColOrder, opts.MaxLevels)
	if err != nil {
		return nil, err
	}

	l := &Layout{RowVar: opts.Row, ColVar: opts.Col, Rows: rows, Cols: cols, NRow: 1, NCol: 1}
	if len(rows) > 0 {
		l.NRow = len(rows)
	}
	if len(cols) > 0 {
		l.NCol = len(cols)
	}
	if opts.ColWrap > 0 {
		l.Wrap = opts.ColWrap
		l.NRow = (len(cols) + opts.ColWrap - 1) / opts.ColWrap
		if l.NRow == 0 {
			l.NRow = 1
		}
		l.NCol = opts.ColWrap
	}

	l.Cells = make([][]*Cell, l.NRow)
	for r := range l.Cells {
		l.Cells[r] = make([]*Cell, l.NCol)
		for c := range l.Cells[r] {
			l.Cells[r][c] = &Cell{Row: r, Col: c, Index: []int{}}
		}
	}
	if l.Wrap > 0 {
		for r := range l.Cells {
			for c, cell := range l.Cells[r] {
				k := r*l.Wrap + c
				if k >= len(cols) {
					cell.Empty = true
					continue
				}
				cell.ID.Col = cols[k]
			}
		}
	} else {
		for r := range l.Cells {
			for c, cell := range l.Cells[r] {
				if rows != nil {
					cell.ID.Row = rows[r]
				}
				if cols != nil {
					cell.ID.Col = cols[c]
				}
			}
		}
	}

	for i := 0; i < src.Len(); i++ {
		if cell := l.cellOf(rowVar, colVar, i); cell != nil {
			cell.Index = append(cell.Index, i)
		}
	}
	return l, nil
}

// cellOf returns the cell observation i falls into or nil if one of
// its levels is not part of the layout.
func (l *Layout) cellOf(rowVar, colVar *data.Variable, i int) *Cell {
	r, c := 0, 0
	if rowVar != nil {
		if r = l.Rows.Index(rowVar.Label(i)); r < 0 {
			return nil
		}
	}
	if colVar != nil {
		if c = l.Cols.Index(colVar.Label(i)); c < 0 {
			return nil
		}
	}
	if l.Wrap > 0 {
		r, c = c/l.Wrap, c%l.Wrap
	}
	return l.Cells[r][c]
}

// Cell returns the cell at (row, col).
func (l *Layout) Cell(row, col int) *Cell { return l.Cells[row][col] }

// EmptyCells returns the number of trailing cells without a level.
func (l *Layout) EmptyCells() int {
	n := 0
	for _, row := range l.Cells {
		for _, c := range row {
			if c.Empty {
				n++
			}
		}
	}
	return n
}

// title returns the panel title of c, e.g. "time = Lunch".
func (l *Layout) title(c *Cell) string {
	var parts []string
	if l.RowVar != "" {
		parts = append(parts, l.RowVar+" = "+c.ID.Row)
	}
	if l.ColVar != "" {
		parts = append(parts, l.ColVar+" = "+c.ID.Col)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return parts[0] + " | " + parts[1]
}
