// Package aspectgraph renders sign aspects and conjunctions as a node-link
// diagram.
//
// Planets are nodes, coloured by natural polarity and grouped into one
// cluster per sign. Aspects are arrows from the aspecting planet;
// conjunctions are undirected dashed edges.
//
//	dot := aspectgraph.ToDOT(g, aspectgraph.Options{Clusters: true})
//	svg, err := aspectgraph.RenderSVG(ctx, dot)
package aspectgraph
