package building

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/notargets/gobuildings/types"
)

// String is name:WDistance:root values:height
func (c *Chamber) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name + ":" + c.WDistance.String() + ":")
	for _, rv := range c.Roots {
		sb.WriteString(fmt.Sprintf("%.6f:", rv))
	}
	sb.WriteString(fmt.Sprintf("%.6f", c.Height))
	return sb.String()
}

func typeLetter(t int) string { return string(types.NewReflection(t)) }

// sortedNames lists chamber names in chamber list order
func sortedNames(chambers []*Chamber) (names []string) {
	cs := make([]*Chamber, len(chambers))
	copy(cs, chambers)
	sort.Slice(cs, func(i, j int) bool { return cs[i].Index < cs[j].Index })
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return
}

// String is type:WDistance:(x, y, z):chamber:...:
func (v *Vertex) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s:%s:(%.6f, %.6f, %.6f):",
		typeLetter(v.Type), v.WDistance, v.Position.X, v.Position.Y, v.Position.Z))
	for _, name := range sortedNames(v.Chambers) {
		sb.WriteString(name + ":")
	}
	return sb.String()
}

// String is type:WDistance:chamber:...
func (p *Panel) String() string {
	parts := append([]string{typeLetter(p.Type), p.WDistance.String()}, sortedNames(p.Chambers)...)
	return strings.Join(parts, ":")
}

func (b *Building) WriteChambers(w io.Writer) (err error) {
	for _, c := range b.Chambers {
		if _, err = fmt.Fprintln(w, c); err != nil {
			return
		}
	}
	return
}

func (b *Building) WriteVertices(w io.Writer) (err error) {
	for _, v := range b.Vertices {
		if _, err = fmt.Fprintln(w, v); err != nil {
			return
		}
	}
	return
}

func (b *Building) WritePanels(w io.Writer) (err error) {
	for _, p := range b.Panels {
		if _, err = fmt.Fprintln(w, p); err != nil {
			return
		}
	}
	return
}

// WriteGraph writes one line per chamber: name, then neighbor|generator pairs
func (b *Building) WriteGraph(w io.Writer) (err error) {
	for i, name := range b.Graph.Chambers() {
		parts := []string{name}
		for _, nb := range b.Graph.NeighborsOf(i) {
			parts = append(parts, nb.Chamber+"|"+string(nb.Generator))
		}
		if _, err = fmt.Fprintln(w, strings.Join(parts, ":")); err != nil {
			return
		}
	}
	return
}

// WriteWeyl writes the Weyl group, one element per line in discovery order
func (b *Building) WriteWeyl(w io.Writer) (err error) {
	for _, word := range b.Context.W() {
		if _, err = fmt.Fprintln(w, word); err != nil {
			return
		}
	}
	return
}
