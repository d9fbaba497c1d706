package group

import (
	"sync"

	"github.com/notargets/gobuildings/types"
	"gonum.org/v1/gonum/mat"
)

// MatrixCache maps letters to their matrices. The first matrix stored under a name wins.
type MatrixCache struct {
	mu   sync.RWMutex
	mats map[types.Letter]*mat.Dense
}

func NewMatrixCache() *MatrixCache {
	return &MatrixCache{mats: make(map[types.Letter]*mat.Dense)}
}

func (mc *MatrixCache) Add(name types.Letter, M *mat.Dense) (added bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if _, present := mc.mats[name]; present {
		return false
	}
	mc.mats[name] = mat.DenseCopyOf(M)
	return true
}

func (mc *MatrixCache) Get(name types.Letter) (M *mat.Dense, ok bool) {
	mc.mu.RLock()
	M, ok = mc.mats[name]
	mc.mu.RUnlock()
	return
}

func (mc *MatrixCache) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.mats)
}
