package renderer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/emt/dtf/pkg/diff"
)

// Renderer turns classified comparison results into terminal tables,
// JSON, or HTML. It only reads the working context for the two file
// names heading every table.
type Renderer struct {
	ctx *diff.WorkingContext
}

func New(ctx *diff.WorkingContext) *Renderer {
	return &Renderer{ctx: ctx}
}

// Format renders a result in the requested output format.
func (r *Renderer) Format(result *diff.Result, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "table", "":
		return r.RenderTables(result), nil

	case "html":
		return r.RenderHTML(result), nil

	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, json, html)", format)
	}
}

// RenderTables renders one titled table per non-empty category.
func (r *Renderer) RenderTables(result *diff.Result) string {
	var sections []string

	if len(result.Keys) > 0 {
		sections = append(sections, r.keyTable(result.Keys).Render())
	}
	if len(result.Types) > 0 {
		sections = append(sections, r.typeTable(result.Types).Render())
	}
	if len(result.Values) > 0 {
		sections = append(sections, r.valueTable(result.Values).Render())
	}
	if len(result.Arrays) > 0 {
		sections = append(sections, r.arrayTable(result.Arrays).Render())
	}

	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n") + "\n"
}

// RenderHTML renders the same tables as HTML, one per non-empty category.
func (r *Renderer) RenderHTML(result *diff.Result) string {
	var sections []string

	if len(result.Keys) > 0 {
		sections = append(sections, r.keyTable(result.Keys).RenderHTML())
	}
	if len(result.Types) > 0 {
		sections = append(sections, r.typeTable(result.Types).RenderHTML())
	}
	if len(result.Values) > 0 {
		sections = append(sections, r.valueTable(result.Values).RenderHTML())
	}
	if len(result.Arrays) > 0 {
		sections = append(sections, r.arrayTable(result.Arrays).RenderHTML())
	}

	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n") + "\n"
}
