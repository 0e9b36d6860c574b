package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/devnet-explorer/internal/model"
)

var ledgerTipIndex = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "block_ledger",
	Name:      "tip_index",
	Help:      "Highest block index observed per chain.",
}, []string{"chain"})

// Ledger tracks chain tips of the block ledger.
type Ledger struct{}

// NewLedger constructs a Ledger metrics collector.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ObserveTip records the current tip index of a chain.
func (m Ledger) ObserveTip(chain model.Chain, index uint64) {
	ledgerTipIndex.WithLabelValues(string(chain)).Set(float64(index))
}
