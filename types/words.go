package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Letter is one token of a word: the identity "I", a simple reflection "s<i>"
// or a root group element "u(i,j)(v)".
type Letter string

const (
	Identity      Letter = "I"
	ChamberMarker Letter = "B"
)

func NewReflection(i int) Letter {
	return Letter("s" + strconv.Itoa(i))
}

func NewRootLetter(i, j int, v float64) Letter {
	return Letter(fmt.Sprintf("u(%d,%d)(%s)", i, j, FormatValue(v)))
}

// FormatValue renders a field value the way it appears inside a root letter,
// the shortest representation that parses back to the same float.
func FormatValue(v float64) string {
	if v == 0 {
		v = 0 // folds -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (l Letter) IsIdentity() bool { return l == Identity }

func (l Letter) IsReflection() bool { return strings.HasPrefix(string(l), "s") }

func (l Letter) IsRoot() bool { return strings.HasPrefix(string(l), "u(") }

// ReflectionIndex parses the generator index of "s<i>"
func (l Letter) ReflectionIndex() (i int, err error) {
	if !l.IsReflection() {
		err = fmt.Errorf("letter %q is not a simple reflection", l)
		return
	}
	if i, err = strconv.Atoi(string(l[1:])); err != nil {
		err = fmt.Errorf("letter %q: %w", l, err)
	}
	return
}

// RootElement parses "u(i,j)(v)" into the matrix position and value
func (l Letter) RootElement() (i, j int, v float64, err error) {
	var (
		s     = string(l)
		open  = strings.LastIndex(s, "(")
		inner string
	)
	if !l.IsRoot() || open < 3 || !strings.HasSuffix(s, ")") || s[open-1] != ')' {
		err = fmt.Errorf("letter %q is not a root group element", l)
		return
	}
	if v, err = strconv.ParseFloat(s[open+1:len(s)-1], 64); err != nil {
		err = fmt.Errorf("letter %q: %w", l, err)
		return
	}
	inner = s[2 : open-1]
	ij := strings.Split(inner, ",")
	if len(ij) != 2 {
		err = fmt.Errorf("letter %q is not a root group element", l)
		return
	}
	if i, err = strconv.Atoi(ij[0]); err != nil {
		return
	}
	j, err = strconv.Atoi(ij[1])
	return
}

// Word is a product of letters read left to right.
type Word []Letter

// ParseWord splits on whitespace. A blank string is the identity word.
func ParseWord(s string) (w Word) {
	for _, f := range strings.Fields(s) {
		w = append(w, Letter(f))
	}
	if len(w) == 0 {
		w = Word{Identity}
	}
	return
}

func (w Word) String() string {
	if len(w) == 0 {
		return string(Identity)
	}
	parts := make([]string, len(w))
	for i, l := range w {
		parts[i] = string(l)
	}
	return strings.Join(parts, " ")
}

// Len counts the letters that are not the identity
func (w Word) Len() (l int) {
	for _, letter := range w {
		if !letter.IsIdentity() {
			l++
		}
	}
	return
}

// Concat joins words, dropping identity letters unless nothing else is left.
func Concat(words ...Word) (w Word) {
	for _, word := range words {
		for _, l := range word {
			if !l.IsIdentity() {
				w = append(w, l)
			}
		}
	}
	if len(w) == 0 {
		w = Word{Identity}
	}
	return
}

// ChamberName is "<root letters> <w> B", or "<w> B" with no root letters.
func ChamberName(roots Word, w Word) string {
	var (
		prefix = Word{}
	)
	for _, l := range roots {
		if !l.IsIdentity() {
			prefix = append(prefix, l)
		}
	}
	if len(prefix) == 0 {
		return w.String() + " " + string(ChamberMarker)
	}
	return prefix.String() + " " + w.String() + " " + string(ChamberMarker)
}

// ChamberWord strips the trailing chamber marker from a name, leaving the word
// whose matrix represents the chamber.
func ChamberWord(name string) (w Word) {
	w = ParseWord(name)
	if len(w) > 1 && w[len(w)-1] == ChamberMarker {
		w = w[:len(w)-1]
	}
	return
}

// RootCoordinates extracts the root group values of a chamber name. Each
// unordered pair j<k owns two slots: the u(j,k) value at 2p and the u(k,j)
// value at 2p+1, where p numbers the pairs in lexical order. Absent groups
// leave a zero.
func RootCoordinates(name string, dim int) (coords []float64) {
	var (
		slot = make(map[[2]int]int)
		p    int
	)
	for j := 0; j < dim; j++ {
		for k := j + 1; k < dim; k++ {
			slot[[2]int{j, k}] = 2 * p
			slot[[2]int{k, j}] = 2*p + 1
			p++
		}
	}
	coords = make([]float64, 2*p)
	for _, l := range ChamberWord(name) {
		if !l.IsRoot() {
			continue
		}
		i, j, v, err := l.RootElement()
		if err != nil {
			continue
		}
		if s, ok := slot[[2]int{i, j}]; ok {
			coords[s] = v
		}
	}
	return
}
