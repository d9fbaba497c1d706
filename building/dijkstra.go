package building

import (
	"fmt"
	"math"

	"github.com/notargets/gobuildings/group"
	"github.com/notargets/gobuildings/types"
)

// Unreachable is the distance of a chamber with no gallery from the source
const Unreachable = math.MaxInt

// runner is the state of one shortest path search over a chamber graph
type runner struct {
	g       *group.ChamberGraph
	dist    []int
	visited []bool
	target  int // -1 settles every chamber
}

/*
Distances is Dijkstra with unit edge weights from src. The unvisited chamber of least distance is settled next,
ties going to the one earliest in the chamber list. The search stops once trgt is settled; an empty trgt settles
every reachable chamber.
*/
func Distances(g *group.ChamberGraph, src, trgt string) (dist map[string]int, err error) {
	var (
		s, t = -1, -1
		ok   bool
	)
	if s, ok = g.Index(src); !ok {
		err = fmt.Errorf("%w: %q", ErrSourceNotFound, src)
		return
	}
	if trgt != "" {
		if t, ok = g.Index(trgt); !ok {
			err = fmt.Errorf("%w: %q", ErrTargetNotFound, trgt)
			return
		}
	}
	r := &runner{
		g:       g,
		dist:    make([]int, g.Len()),
		visited: make([]bool, g.Len()),
		target:  t,
	}
	r.init(s)
	r.process()
	dist = make(map[string]int, g.Len())
	for i, d := range r.dist {
		dist[g.Name(i)] = d
	}
	return
}

func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	r.dist[src] = 0
}

func (r *runner) next() (u int) {
	u = -1
	for i, d := range r.dist {
		if r.visited[i] || d == Unreachable {
			continue
		}
		if u < 0 || d < r.dist[u] {
			u = i
		}
	}
	return
}

func (r *runner) process() {
	for {
		u := r.next()
		if u < 0 {
			return
		}
		r.visited[u] = true
		if u == r.target {
			return
		}
		for _, nb := range r.g.NeighborsOf(u) {
			if r.visited[nb.Index] {
				continue
			}
			if alt := r.dist[u] + 1; alt < r.dist[nb.Index] {
				r.dist[nb.Index] = alt
			}
		}
	}
}

/*
PathWord walks back from trgt to the source of dist. At each step the first neighbor exactly one closer is taken
and its edge label is prepended, so the word reads from the source to trgt. The gallery lists the chambers
visited, source first. The source itself has the identity word.
*/
func PathWord(dist map[string]int, g *group.ChamberGraph, trgt string) (w types.Word, gallery []string, err error) {
	var (
		d, ok = dist[trgt]
		cur   = trgt
	)
	if !ok {
		err = fmt.Errorf("%w: %q", ErrTargetNotFound, trgt)
		return
	}
	if d == Unreachable {
		err = fmt.Errorf("%w: %q", ErrUnreachableChamber, trgt)
		return
	}
	gallery = []string{trgt}
	for d > 0 {
		var found bool
		for _, nb := range g.Neighbors(cur) {
			if dist[nb.Chamber] == d-1 {
				w = append(types.Word{nb.Generator}, w...)
				gallery = append([]string{nb.Chamber}, gallery...)
				cur, d, found = nb.Chamber, d-1, true
				break
			}
		}
		if !found {
			err = fmt.Errorf("%w: no neighbor of %q at distance %d", ErrUnreachableChamber, cur, d-1)
			return
		}
	}
	if len(w) == 0 {
		w = types.Word{types.Identity}
	}
	return
}
