// graph.go -- directed graphs with bitset adjacency and reachability
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/opencoff/go-bitset"
	"github.com/opencoff/go-bitset/xoshiro"
	"github.com/opencoff/golang-lru"
	"golang.org/x/sync/errgroup"
)

// graph holds, for each node, the set of its direct successors. Successor
// sets only grow as wide as their largest neighbour; Promoted bitsets let
// them combine regardless.
type graph struct {
	names []string
	index map[string]int
	succ  []*bitset.Bitset

	// memoized reachability sets
	cache *lru.ARCCache
}

func newGraph(cache int) (*graph, error) {
	if cache <= 0 {
		cache = 128
	}

	arc, err := lru.NewARC(cache)
	if err != nil {
		return nil, err
	}

	g := &graph{
		index: make(map[string]int),
		cache: arc,
	}
	return g, nil
}

// randomGraph builds a graph of 'n' nodes named by their index, each with
// 'degree' random out-edges.
func randomGraph(n, degree int, seed uint64, cache int) (*graph, error) {
	g, err := newGraph(cache)
	if err != nil {
		return nil, err
	}

	rnd := xoshiro.NewSeeded(seed)
	for i := 0; i < n; i++ {
		g.node(fmt.Sprintf("%d", i))
	}
	for i := 0; i < n; i++ {
		for d := 0; d < degree; d++ {
			j := int(rnd.Uint64n(uint64(n)))
			g.addEdge(g.names[i], g.names[j])
		}
	}
	return g, nil
}

// Len returns the number of nodes
func (g *graph) Len() int {
	return len(g.names)
}

// node returns the index of 'name', adding it if needed
func (g *graph) node(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}

	i := len(g.names)
	g.names = append(g.names, name)
	g.index[name] = i
	g.succ = append(g.succ, bitset.New(bitset.Promoted))
	return i
}

func (g *graph) addEdge(src, dst string) {
	s := g.node(src)
	d := g.node(dst)

	b := g.succ[s]
	if uint64(d) >= b.Len() {
		b.Resize(uint64(d)+1, false)
	}
	b.Set(uint64(d))
	g.cache.Purge()
}

// reach returns the set of nodes reachable from node 'i' by one or more
// edges. The result must not be modified.
func (g *graph) reach(i int) *bitset.Bitset {
	if v, ok := g.cache.Get(i); ok {
		return v.(*bitset.Bitset)
	}

	seen := bitset.NewSized(bitset.Promoted, uint64(g.Len()), false)
	next := g.succ[i].Clone()
	for next.Any() {
		seen.Or(next)

		frontier := bitset.New(bitset.Promoted)
		for j, ok := next.NextSet(0); ok; j, ok = next.NextSet(j + 1) {
			frontier.Or(g.succ[j])
		}

		// seen spans every node; frontier is never wider
		next = frontier.AndNot(seen)
	}

	g.cache.Add(i, seen)
	return seen
}

// names of every node set in 'b'
func (g *graph) nodes(b *bitset.Bitset) []string {
	idx := b.Indices()
	v := make([]string, len(idx))
	for k, i := range idx {
		v[k] = g.names[i]
	}
	return v
}

// classes groups nodes with identical reachability sets. Only groups with
// more than one member are returned; members are in node order. The
// reachability sets are computed concurrently; cancelling 'ctx' abandons
// the work and returns its error.
func (g *graph) classes(ctx context.Context) ([][]string, error) {
	key := xoshiro.RandBytes(16)
	sets := make([]*bitset.Bitset, g.Len())
	sums := make([]uint64, g.Len())

	// each set is independent of the others; the cache does its own locking
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i := range sets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			sets[i] = g.reach(i)
			sums[i] = sets[i].KeyedSum64(key)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	buckets := make(map[uint64][][]int)
	for i, r := range sets {
		h := sums[i]

		cls := buckets[h]
		found := false
		for k, c := range cls {
			if sets[c[0]].Equal(r) {
				cls[k] = append(c, i)
				found = true
				break
			}
		}
		if !found {
			buckets[h] = append(cls, []int{i})
		}
	}

	var res [][]string
	for _, cls := range buckets {
		for _, c := range cls {
			if len(c) < 2 {
				continue
			}

			names := make([]string, len(c))
			for k, i := range c {
				names[k] = g.names[i]
			}
			res = append(res, names)
		}
	}

	// map order is random; make the output stable
	sort.Slice(res, func(a, b int) bool {
		return g.index[res[a][0]] < g.index[res[b][0]]
	})
	return res, nil
}
