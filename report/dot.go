// SPDX-License-Identifier: MIT
//
// File: dot.go
// Role: Graphviz snapshots of a spread, rendered with gonum encoding/dot.
// Colours:
//   - seed:       red, doublecircle
//   - influenced: red
//   - others:     lightgray

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/influence/core"
	"github.com/katalvlaran/influence/diffusion"
)

const (
	colorInfluenced = "red"
	colorIdle       = "lightgray"
)

type attrList []encoding.Attribute

func (a attrList) Attributes() []encoding.Attribute { return a }

// dotNode is a gonum node carrying its own Graphviz attributes.
type dotNode struct {
	id    int64
	attrs attrList
}

func (n dotNode) ID() int64                        { return n.id }
func (n dotNode) Attributes() []encoding.Attribute { return n.attrs }

// dotGraph adds graph-wide attributes to a simple.UndirectedGraph.
type dotGraph struct {
	*simple.UndirectedGraph
	title string
}

func (g dotGraph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return attrList{{Key: "label", Value: g.title}, {Key: "labelloc", Value: "t"}},
		attrList{{Key: "style", Value: "filled"}},
		attrList{}
}

// RenderDOT returns g as an undirected Graphviz document with seed and the
// influenced nodes highlighted.
func RenderDOT(g *core.Graph, seed core.NodeID, influenced []core.NodeID, title string) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	hit := make(map[core.NodeID]bool, len(influenced))
	for _, v := range influenced {
		hit[v] = true
	}

	ug := simple.NewUndirectedGraph()
	nodes := make(map[core.NodeID]dotNode, g.NodeCount())
	for _, v := range g.Nodes() {
		n := dotNode{id: int64(v)}
		switch {
		case v == seed:
			n.attrs = attrList{{Key: "fillcolor", Value: colorInfluenced}, {Key: "shape", Value: "doublecircle"}}
		case hit[v]:
			n.attrs = attrList{{Key: "fillcolor", Value: colorInfluenced}}
		default:
			n.attrs = attrList{{Key: "fillcolor", Value: colorIdle}}
		}
		nodes[v] = n
		ug.AddNode(n)
	}
	for _, e := range g.Edges() {
		ug.SetEdge(ug.NewEdge(nodes[e.From], nodes[e.To]))
	}

	b, err := dot.Marshal(dotGraph{UndirectedGraph: ug, title: title}, "influence", "", "  ")
	if err != nil {
		return nil, fmt.Errorf("RenderDOT: %w", err)
	}

	return b, nil
}

// DOTRecorder is an Observer that writes step_000.dot for the initial state
// and step_NNN.dot after every step into a directory.
type DOTRecorder struct {
	g     *core.Graph
	dir   string
	seed  core.NodeID
	files []string
	err   error
}

// NewDOTRecorder creates dir if needed and returns a recorder for a snapshot
// of g; edits to g afterwards do not show up in the frames.
func NewDOTRecorder(g *core.Graph, dir string) (*DOTRecorder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewDOTRecorder: %w", err)
	}

	return &DOTRecorder{g: g.Clone(), dir: dir}, nil
}

// OnStart implements diffusion.Observer.
func (r *DOTRecorder) OnStart(ev diffusion.StartEvent) {
	r.seed = ev.Seed
	r.write(0, []core.NodeID{ev.Seed}, fmt.Sprintf("Influence Spread - Step 0 (Start: %d)", ev.Seed))
}

// OnStep implements diffusion.Observer.
func (r *DOTRecorder) OnStep(ev diffusion.StepEvent) {
	r.write(ev.Step, ev.Influenced, fmt.Sprintf("Influence Spread - Step %d", ev.Step))
}

// OnFinish implements diffusion.Observer.
func (r *DOTRecorder) OnFinish(*diffusion.Result) {}

// Files lists the written paths in order.
func (r *DOTRecorder) Files() []string { return append([]string(nil), r.files...) }

// Err returns the first render or write error; later snapshots are skipped.
func (r *DOTRecorder) Err() error { return r.err }

func (r *DOTRecorder) write(step int, influenced []core.NodeID, title string) {
	if r.err != nil {
		return
	}
	b, err := RenderDOT(r.g, r.seed, influenced, title)
	if err != nil {
		r.err = err
		return
	}
	path := filepath.Join(r.dir, fmt.Sprintf("step_%03d.dot", step))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		r.err = fmt.Errorf("DOTRecorder: %w", err)
		return
	}
	r.files = append(r.files, path)
}
