package analytics

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
)

// Edge is an undirected edge between two client names. A is always the
// lexically smaller name.
type Edge struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

func newEdge(x, y string) Edge {
	if y < x {
		x, y = y, x
	}
	return Edge{A: x, B: y}
}

// Graph is an undirected simple graph of clients. Vertices are client names;
// there are no self-loops and no parallel edges.
type Graph struct {
	adj map[string]map[string]struct{}
}

func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

// AddNode adds name as a vertex if it is not one already.
func (g *Graph) AddNode(name string) {
	if _, ok := g.adj[name]; !ok {
		g.adj[name] = make(map[string]struct{})
	}
}

// AddEdge connects a and b. It reports false, and adds nothing, when a and b
// are the same name.
func (g *Graph) AddEdge(a, b string) bool {
	if a == b {
		return false
	}
	g.link(a, b)
	g.link(b, a)
	return true
}

func (g *Graph) link(from, to string) {
	neighbors, ok := g.adj[from]
	if !ok {
		neighbors = make(map[string]struct{})
		g.adj[from] = neighbors
	}
	neighbors[to] = struct{}{}
}

func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Degree returns the number of distinct neighbours of name.
func (g *Graph) Degree(name string) int {
	return len(g.adj[name])
}

// Nodes returns all vertex names sorted.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.adj))
	for name := range g.adj {
		nodes = append(nodes, name)
	}
	sort.Strings(nodes)
	return nodes
}

// Edges returns every edge once, sorted by (A, B).
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for a, neighbors := range g.adj {
		for b := range neighbors {
			if a < b {
				edges = append(edges, newEdge(a, b))
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// Network is the serializable form of a Graph.
type Network struct {
	Nodes []string `json:"nodes" yaml:"nodes"`
	Edges []Edge   `json:"edges" yaml:"edges"`
}

func (g *Graph) Network() Network {
	n := Network{Nodes: g.Nodes(), Edges: g.Edges()}
	if n.Edges == nil {
		n.Edges = []Edge{}
	}
	return n
}

// WriteDOT renders the graph in Graphviz DOT format.
func (g *Graph) WriteDOT(w io.Writer) error {
	if _, err := io.WriteString(w, "graph clients {\n"); err != nil {
		return err
	}
	for _, name := range g.Nodes() {
		if _, err := fmt.Fprintf(w, "\t%s;\n", strconv.Quote(name)); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "\t%s -- %s;\n", strconv.Quote(e.A), strconv.Quote(e.B)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// BuildNetwork builds the co-purchase graph from store pairs. Pairs are keyed
// by client name, so two clients that share a name collapse into one vertex
// and the pair between them adds no edge. Every name that appears in a pair
// is a vertex.
func BuildNetwork(pairs []domain.CoPurchase) *Graph {
	g := NewGraph()
	for _, p := range pairs {
		g.AddNode(p.Source)
		g.AddNode(p.Target)
		g.AddEdge(p.Source, p.Target)
	}
	return g
}
