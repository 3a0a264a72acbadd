package report

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/omeganet/pkg/schedule"
)

// slotPalette tints conflict-graph nodes by their assigned transfer cycle.
// Seven transfers at most, so four colors always suffice; the palette
// wraps defensively anyway.
var slotPalette = []string{"palegreen", "lightskyblue", "lightsalmon", "plum", "khaki", "lightgrey"}

// ToDOT converts a scheduled conflict graph to Graphviz DOT. Transfers
// become nodes labeled "src->dst" and filled by transfer-cycle color;
// conflict edges are undirected.
func ToDOT(g *schedule.Graph, s schedule.Schedule, title string) string {
	var buf bytes.Buffer
	buf.WriteString("graph conflicts {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=14];\n")
	if title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", title)
	}
	buf.WriteString("\n")

	for i := 0; i < g.Size(); i++ {
		fill := slotPalette[s.SlotOf(i)%len(slotPalette)]
		fmt.Fprintf(&buf, "  %q [fillcolor=%s, xlabel=\"cycle %d\"];\n",
			g.Transfer(i).String(), fill, s.SlotOf(i)+1)
	}

	buf.WriteString("\n")
	for i := 0; i < g.Size(); i++ {
		for j := i + 1; j < g.Size(); j++ {
			if g.Conflicts(i, j) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", g.Transfer(i).String(), g.Transfer(j).String())
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz in-process.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz in-process.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if format == graphviz.SVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the generated <svg> tag so the viewBox starts
// at the origin and width/height match it, which keeps embedding tools
// from clipping the drawing.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
