package skipmap

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Dump renders the skip list's levels as a table: one row per level, top
// level first, one column per key, a mark where the key reaches that level.
func (m *Map[K, V]) Dump(w io.Writer) {
	header := []string{"Level"}
	var levels []int
	for it := m.CBegin(); it.Valid(); it.Next() {
		header = append(header, fmt.Sprint(it.Key()))
		levels = append(levels, m.list.Levels(it.ref))
	}

	rows := make([][]string, 0, m.Height())
	for level := m.Height() - 1; level >= 0; level-- {
		row := []string{strconv.Itoa(level)}
		for _, n := range levels {
			cell := ""
			if n > level {
				cell = "●"
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}
