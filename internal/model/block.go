// Package model defines the wire and domain models exchanged with the devnet backend.
package model

import "encoding/json"

// Chain names one of the two simulated chains.
type Chain string

var (
	// Stacks is the layered chain whose blocks drive field cursors.
	Stacks Chain = "stacks"
	// Bitcoin is the base chain anchoring the layered chain.
	Bitcoin Chain = "bitcoin"
)

// BlockIdentifier identifies a block on one chain. Hash equality decides
// whether two identifiers name the same block; Index only orders them.
type BlockIdentifier struct {
	Index uint64 `json:"index"`
	Hash  string `json:"hash"`
}

// SameBlock reports whether both identifiers carry the same hash.
func (b BlockIdentifier) SameBlock(other BlockIdentifier) bool {
	return b.Hash == other.Hash
}

// GenesisCursor is the cursor used for a field that has never been observed.
var GenesisCursor = BlockIdentifier{Index: 1, Hash: ""}

// TransactionIdentifier identifies a transaction.
type TransactionIdentifier struct {
	Hash string `json:"hash"`
}

// Block is a block observed on either chain. Transactions and metadata are
// kept opaque, the sync client never interprets them.
type Block struct {
	BlockIdentifier       BlockIdentifier   `json:"block_identifier"`
	ParentBlockIdentifier BlockIdentifier   `json:"parent_block_identifier"`
	Timestamp             int64             `json:"timestamp"`
	Transactions          []json.RawMessage `json:"transactions,omitempty"`
	Metadata              json.RawMessage   `json:"metadata,omitempty"`
}
