// Package render holds the chart visualizations.
//
// The [aspectgraph] subpackage draws planetary aspects and conjunctions as a
// Graphviz diagram.
//
// [aspectgraph]: github.com/matzehuels/kundali/pkg/render/aspectgraph
package render
