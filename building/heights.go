package building

import (
	"go.uber.org/zap"
)

/*
assignHeights walks the Weyl group in discovery order. Every processed chamber of the current layer hands each
unprocessed neighbor its own height plus count/len(layer), where count is the number of neighbors already placed
through the same generator. The fundamental chamber sits at height 1.
*/
func (b *Building) assignHeights() {
	var (
		rank = b.Context.Rank
	)
	fund := b.Fundamental()
	fund.Height, fund.processed = 1, true
	for _, w := range b.Context.W() {
		layer := b.Layer(w)
		for _, c := range layer {
			if !c.processed {
				continue
			}
			count := make([]int, rank)
			for _, nb := range b.Graph.NeighborsOf(c.Index) {
				n := b.Chambers[nb.Index]
				if n.processed {
					continue
				}
				n.Height = c.Height + float64(count[nb.Type])/float64(len(layer))
				n.processed = true
				count[nb.Type]++
			}
		}
	}
	for _, c := range b.Chambers {
		if !c.processed {
			b.logger.Warn("chamber never reached by height assignment", zap.String("chamber", c.Name))
		}
	}
}

// MaxHeight is the greatest height within a layer
func MaxHeight(layer []*Chamber) (maxH float64) {
	for i, c := range layer {
		if i == 0 || c.Height > maxH {
			maxH = c.Height
		}
	}
	return
}
