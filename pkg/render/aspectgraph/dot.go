package aspectgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
)

// EdgeKind distinguishes aspects from conjunctions.
type EdgeKind int

const (
	Aspect EdgeKind = iota
	Conjunction
)

// Node is one planet.
type Node struct {
	Name   string
	Sign   string
	House  int
	Nature string
}

// Edge is an aspect (From aspects To) or a conjunction.
type Edge struct {
	From string
	To   string
	Kind EdgeKind
}

// Graph is the diagram input.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Options configures the diagram.
type Options struct {
	// Clusters groups planets sharing a sign into one box.
	Clusters bool
	// Detailed adds sign and house to node labels.
	Detailed bool
}

var natureColors = map[string]string{
	"Benefic": "#c8e6c9",
	"Malefic": "#ffcdd2",
	"Neutral": "#fff9c4",
}

// ToDOT converts g to Graphviz DOT. Each conjunction is emitted once
// regardless of how many times it appears in g.
func ToDOT(g Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Aspects {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [color=\"#555555\"];\n")
	buf.WriteString("\n")

	if opts.Clusters {
		bySign := map[string][]Node{}
		var signs []string
		for _, n := range g.Nodes {
			if _, ok := bySign[n.Sign]; !ok {
				signs = append(signs, n.Sign)
			}
			bySign[n.Sign] = append(bySign[n.Sign], n)
		}
		for i, s := range signs {
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
			fmt.Fprintf(&buf, "    label=%q;\n    style=rounded;\n", s)
			for _, n := range bySign[s] {
				fmt.Fprintf(&buf, "    %q [%s];\n", n.Name, strings.Join(nodeAttrs(n, opts.Detailed), ", "))
			}
			buf.WriteString("  }\n")
		}
	} else {
		for _, n := range g.Nodes {
			fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, strings.Join(nodeAttrs(n, opts.Detailed), ", "))
		}
	}

	buf.WriteString("\n")
	seen := map[[2]string]bool{}
	for _, e := range g.Edges {
		switch e.Kind {
		case Conjunction:
			pair := [2]string{e.From, e.To}
			slices.Sort(pair[:])
			if seen[pair] {
				continue
			}
			seen[pair] = true
			fmt.Fprintf(&buf, "  %q -> %q [dir=none, style=dashed];\n", pair[0], pair[1])
		default:
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n Node, detailed bool) []string {
	label := n.Name
	if detailed {
		label = fmt.Sprintf("%s\n%s", n.Name, n.Sign)
		if n.House > 0 {
			label += fmt.Sprintf(" / H%d", n.House)
		}
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if c, ok := natureColors[n.Nature]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height match the viewBox, so the diagram scales in browsers.
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
	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
