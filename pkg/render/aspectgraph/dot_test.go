package aspectgraph

import (
	"strings"
	"testing"
)

func sampleGraph() Graph {
	return Graph{
		Nodes: []Node{
			{Name: "Sun", Sign: "Aries", House: 1, Nature: "Malefic"},
			{Name: "Mercury", Sign: "Aries", House: 1, Nature: "Neutral"},
			{Name: "Saturn", Sign: "Libra", House: 7, Nature: "Malefic"},
		},
		Edges: []Edge{
			{From: "Sun", To: "Mercury", Kind: Conjunction},
			{From: "Mercury", To: "Sun", Kind: Conjunction},
			{From: "Saturn", To: "Sun", Kind: Aspect},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleGraph(), Options{})
	if !strings.HasPrefix(dot, "digraph Aspects {") {
		t.Errorf("unexpected header: %q", dot[:20])
	}
	if n := strings.Count(dot, "dir=none"); n != 1 {
		t.Errorf("conjunction emitted %d times, want 1", n)
	}
	if !strings.Contains(dot, `"Saturn" -> "Sun";`) {
		t.Error("aspect edge missing")
	}
	if !strings.Contains(dot, `fillcolor="#fff9c4"`) {
		t.Error("neutral colour missing")
	}
	if strings.Contains(dot, "subgraph") {
		t.Error("clusters emitted without Clusters option")
	}
}

func TestToDOTClustersAndDetail(t *testing.T) {
	dot := ToDOT(sampleGraph(), Options{Clusters: true, Detailed: true})
	if n := strings.Count(dot, "subgraph cluster_"); n != 2 {
		t.Errorf("got %d clusters, want 2", n)
	}
	if !strings.Contains(dot, `label="Saturn\nLibra / H7"`) {
		t.Errorf("detailed label missing in:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}
