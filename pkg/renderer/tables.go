package renderer

import (
	"encoding/json"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/emt/dtf/pkg/diff"
)

const (
	checkmark = "✓"
	multiply  = "×"

	maxColumnWidth = 80
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// newTable builds a titled three-column table in the shared house style:
// double borders, centered title, file names as the two data columns.
func (r *Renderer) newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDouble)
	t.Style().Title.Align = text.AlignCenter
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Key", r.ctx.FileA.Name, r.ctx.FileB.Name})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: maxColumnWidth},
		{Number: 2, WidthMax: maxColumnWidth},
		{Number: 3, WidthMax: maxColumnWidth},
	})
	return t
}

func (r *Renderer) keyTable(data []diff.KeyDiff) table.Writer {
	t := r.newTable("Key Differences")
	for _, kd := range data {
		t.AppendRow(table.Row{
			kd.Key,
			checkHas(r.ctx.FileA.Name, kd),
			checkHas(r.ctx.FileB.Name, kd),
		})
	}
	return t
}

func (r *Renderer) typeTable(data []diff.TypeDiff) table.Writer {
	t := r.newTable("Type Differences")
	for _, td := range data {
		t.AppendRow(table.Row{td.Key, td.Type1, td.Type2})
	}
	return t
}

func (r *Renderer) valueTable(data []diff.ValueDiff) table.Writer {
	t := r.newTable("Value Differences")
	for _, vd := range data {
		t.AppendRow(table.Row{vd.Key, prettyValue(vd.Value1), prettyValue(vd.Value2)})
	}
	return t
}

// arrayTable puts the element value in the column of the side each
// descriptor names, prefixed with a has/misses marker. Descriptors come
// in complementary pairs, so every element shows up once per side.
func (r *Renderer) arrayTable(data []diff.ArrayDiff) table.Writer {
	t := r.newTable("Array Differences")
	for _, ad := range data {
		value := prettyValue(ad.Value)
		var cellA, cellB string
		switch ad.Descriptor {
		case diff.AHas:
			cellA = green.Sprint(checkmark) + " " + value
		case diff.AMisses:
			cellA = red.Sprint(multiply) + " " + value
		case diff.BHas:
			cellB = green.Sprint(checkmark) + " " + value
		case diff.BMisses:
			cellB = red.Sprint(multiply) + " " + value
		}
		t.AppendRow(table.Row{ad.Key, cellA, cellB})
	}
	return t
}

// checkHas marks per-side presence for a key difference.
func checkHas(fileName string, kd diff.KeyDiff) string {
	if kd.Has == fileName {
		return green.Sprint(checkmark)
	}
	return red.Sprint(multiply)
}

// prettyValue re-indents serialized JSON for display; anything that does
// not parse is shown as-is.
func prettyValue(serialized string) string {
	var v interface{}
	if err := json.Unmarshal([]byte(serialized), &v); err != nil {
		return serialized
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return serialized
	}
	return string(pretty)
}
