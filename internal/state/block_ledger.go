package state

import (
	"sync"

	"github.com/goodnatureofminers/devnet-explorer/internal/model"
)

type (
	// LedgerMetrics observes chain tips as they move.
	LedgerMetrics interface {
		ObserveTip(chain model.Chain, index uint64)
	}

	chainBlocks struct {
		blocks   map[uint64]model.Block
		tip      uint64
		hasBlock bool
	}
)

// BlockLedger stores observed blocks by index for each chain.
type BlockLedger struct {
	mu      sync.RWMutex
	chains  map[model.Chain]*chainBlocks
	metrics LedgerMetrics
}

// NewBlockLedger returns an empty ledger. metrics may be nil.
func NewBlockLedger(metrics LedgerMetrics) *BlockLedger {
	return &BlockLedger{
		chains:  map[model.Chain]*chainBlocks{},
		metrics: metrics,
	}
}

// AppendBlocks stores blocks by index, overwriting any block already at that
// index, and raises the chain tip to the highest index seen.
func (l *BlockLedger) AppendBlocks(chain model.Chain, blocks []model.Block) {
	if len(blocks) == 0 {
		return
	}

	l.mu.Lock()
	c, ok := l.chains[chain]
	if !ok {
		c = &chainBlocks{blocks: map[uint64]model.Block{}}
		l.chains[chain] = c
	}
	for _, b := range blocks {
		index := b.BlockIdentifier.Index
		c.blocks[index] = b
		if !c.hasBlock || index > c.tip {
			c.tip = index
			c.hasBlock = true
		}
	}
	tip := c.tip
	l.mu.Unlock()

	if l.metrics != nil {
		l.metrics.ObserveTip(chain, tip)
	}
}

// Tip returns the block at the chain tip.
func (l *BlockLedger) Tip(chain model.Chain) (model.Block, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.chains[chain]
	if !ok || !c.hasBlock {
		return model.Block{}, false
	}
	b, ok := c.blocks[c.tip]
	return b, ok
}

// TipIndex returns the highest index seen on the chain.
func (l *BlockLedger) TipIndex(chain model.Chain) (uint64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.chains[chain]
	if !ok || !c.hasBlock {
		return 0, false
	}
	return c.tip, true
}

// Block returns the block stored at an index.
func (l *BlockLedger) Block(chain model.Chain, index uint64) (model.Block, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.chains[chain]
	if !ok {
		return model.Block{}, false
	}
	b, ok := c.blocks[index]
	return b, ok
}

// Reset forgets every block.
func (l *BlockLedger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.chains = map[model.Chain]*chainBlocks{}
}
