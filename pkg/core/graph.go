// Package core provides the fundamental data structures for honeybee.
//
// This file implements the site-link graph: a directed adjacency list keyed by
// site identifier. Every site is interned once and addressed by a NodeID, so
// the engines can compare positions instead of strings. The graph is built in
// a single pass and is read-only afterwards; it carries no locks.

package core

import (
	"github.com/tidwall/btree"
)

// NodeID is the position of a site inside a Graph.
// Two NodeIDs are equal only when they refer to the same entry.
type NodeID int

// Graph is a directed multigraph of sites.
// Out-edges keep their insertion order and duplicates are preserved.
type Graph struct {
	names []string
	out   [][]NodeID
	edges int

	// index maps a site to its NodeID, ordered by site name.
	index *btree.Map[string, NodeID]
}

// NewGraph creates and returns a new, empty Graph.
func NewGraph() *Graph {
	return &Graph{
		index: btree.NewMap[string, NodeID](0),
	}
}

// intern returns the NodeID of site, creating an entry with no
// out-edges if the site has not been seen yet. An existing entry is never reset.
func (g *Graph) intern(site string) NodeID {
	if id, found := g.index.Get(site); found {
		return id
	}
	id := NodeID(len(g.names))
	g.names = append(g.names, site)
	g.out = append(g.out, nil)
	g.index.Set(site, id)
	return id
}

// AddEdge appends target to the out-edges of source.
// Both endpoints become keys of the graph.
func (g *Graph) AddEdge(source, target string) {
	src := g.intern(source)
	dst := g.intern(target)
	g.out[src] = append(g.out[src], dst)
	g.edges++
}

// Lookup returns the NodeID of site and whether it exists.
func (g *Graph) Lookup(site string) (NodeID, bool) {
	return g.index.Get(site)
}

// Exists reports whether site appears anywhere in the graph,
// either as a link source or as a link target.
func (g *Graph) Exists(site string) bool {
	_, found := g.index.Get(site)
	return found
}

// Name returns the site identifier stored at id.
func (g *Graph) Name(id NodeID) string {
	return g.names[id]
}

// Out returns the out-edges of id in insertion order.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) Out(id NodeID) []NodeID {
	return g.out[id]
}

// Neighbors returns the link targets of site in insertion order.
// It returns an empty slice when the site has no out-edges or is unknown.
func (g *Graph) Neighbors(site string) []string {
	id, found := g.index.Get(site)
	if !found {
		return []string{}
	}
	targets := make([]string, len(g.out[id]))
	for i, t := range g.out[id] {
		targets[i] = g.names[t]
	}
	return targets
}

// Len returns the number of distinct sites.
func (g *Graph) Len() int {
	return len(g.names)
}

// EdgeCount returns the number of links, duplicates included.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Sites returns every site in lexical order.
func (g *Graph) Sites() []string {
	sites := make([]string, 0, g.index.Len())
	g.index.Scan(func(site string, _ NodeID) bool {
		sites = append(sites, site)
		return true
	})
	return sites
}

// Adjacency returns a copy of the graph as a plain map.
// Sites without out-edges map to an empty, non-nil slice.
func (g *Graph) Adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.names))
	for _, site := range g.names {
		adj[site] = g.Neighbors(site)
	}
	return adj
}
