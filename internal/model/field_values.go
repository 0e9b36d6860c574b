package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FieldKind is the tag of a FieldValues union.
type FieldKind string

var (
	FieldVar FieldKind = "Var"
	FieldMap FieldKind = "Map"
	FieldFt  FieldKind = "Ft"
	FieldNft FieldKind = "Nft"
)

// FieldValues is the snapshot of one watched field, externally tagged on the wire
// as {"Var": {...}}, {"Map": {...}}, {"Ft": {...}} or {"Nft": {...}}.
type FieldValues struct {
	Var *VarValues `json:"Var,omitempty"`
	Map *MapValues `json:"Map,omitempty"`
	Ft  *FtValues  `json:"Ft,omitempty"`
	Nft *NftValues `json:"Nft,omitempty"`
}

// Kind returns the tag of the set variant, or "" when none or several are set.
func (v FieldValues) Kind() FieldKind {
	var kind FieldKind
	set := 0
	if v.Var != nil {
		kind = FieldVar
		set++
	}
	if v.Map != nil {
		kind = FieldMap
		set++
	}
	if v.Ft != nil {
		kind = FieldFt
		set++
	}
	if v.Nft != nil {
		kind = FieldNft
		set++
	}
	if set != 1 {
		return ""
	}
	return kind
}

// Validate checks that exactly one variant is set.
func (v FieldValues) Validate() error {
	if v.Kind() == "" {
		return errors.New("field values must carry exactly one of Var, Map, Ft, Nft")
	}
	return nil
}

// VarValues is the state of a data variable.
type VarValues struct {
	Value           string          `json:"value"`
	ValueType       json.RawMessage `json:"value_type,omitempty"`
	Events          []VarSetEvent   `json:"events"`
	EventsPageSize  uint16          `json:"events_page_size"`
	EventsPageIndex uint64          `json:"events_page_index"`
}

// VarSetEvent records a variable assignment.
type VarSetEvent struct {
	Value      string `json:"value"`
	BlockIndex uint64 `json:"block_index"`
	EventIndex uint64 `json:"event_index"`
}

// MapValues is the state of a data map.
type MapValues struct {
	Entries          []StoredEntry   `json:"entries"`
	EntriesPageSize  uint16          `json:"entries_page_size"`
	EntriesPageIndex uint64          `json:"entries_page_index"`
	KeyType          json.RawMessage `json:"key_type,omitempty"`
	ValueType        json.RawMessage `json:"value_type,omitempty"`
	Events           []MapEvent      `json:"events"`
	EventsPageSize   uint16          `json:"events_page_size"`
	EventsPageIndex  uint64          `json:"events_page_index"`
}

// MapEvent is one of Insert, Update or Delete.
type MapEvent struct {
	Insert *MapInsertEvent `json:"Insert,omitempty"`
	Update *MapUpdateEvent `json:"Update,omitempty"`
	Delete *MapDeleteEvent `json:"Delete,omitempty"`
}

type MapInsertEvent struct {
	InsertedKey   string `json:"inserted_key"`
	InsertedValue string `json:"inserted_value"`
	BlockIndex    uint64 `json:"block_index"`
	EventIndex    uint64 `json:"event_index"`
}

type MapUpdateEvent struct {
	Key          string `json:"key"`
	UpdatedValue string `json:"updated_value"`
	BlockIndex   uint64 `json:"block_index"`
	EventIndex   uint64 `json:"event_index"`
}

type MapDeleteEvent struct {
	DeletedKey string `json:"deleted_key"`
	BlockIndex uint64 `json:"block_index"`
	EventIndex uint64 `json:"event_index"`
}

// NftValues is the ownership ledger of a non-fungible token.
type NftValues struct {
	Tokens          []StoredEntry   `json:"tokens"`
	TokensPageSize  uint16          `json:"tokens_page_size"`
	TokensPageIndex uint64          `json:"tokens_page_index"`
	TokenType       json.RawMessage `json:"token_type,omitempty"`
	Events          []NftEvent      `json:"events"`
	EventsPageSize  uint16          `json:"events_page_size"`
	EventsPageIndex uint64          `json:"events_page_index"`
}

// NftEvent is one of Mint, Transfer or Burn.
type NftEvent struct {
	Mint     *NftMintEvent     `json:"Mint,omitempty"`
	Transfer *NftTransferEvent `json:"Transfer,omitempty"`
	Burn     *NftBurnEvent     `json:"Burn,omitempty"`
}

type NftMintEvent struct {
	Recipient       string `json:"recipient"`
	AssetIdentifier string `json:"asset_identifier"`
	BlockIndex      uint64 `json:"block_index"`
	EventIndex      uint64 `json:"event_index"`
}

type NftTransferEvent struct {
	Sender          string `json:"sender"`
	Recipient       string `json:"recipient"`
	AssetIdentifier string `json:"asset_identifier"`
	BlockIndex      uint64 `json:"block_index"`
	EventIndex      uint64 `json:"event_index"`
}

type NftBurnEvent struct {
	Sender          string `json:"sender"`
	AssetIdentifier string `json:"asset_identifier"`
	BlockIndex      uint64 `json:"block_index"`
	EventIndex      uint64 `json:"event_index"`
}

// FtValues is the balance ledger of a fungible token.
type FtValues struct {
	Balances          []StoredEntry `json:"balances"`
	BalancesPageSize  uint16        `json:"balances_page_size"`
	BalancesPageIndex uint64        `json:"balances_page_index"`
	Events            []FtEvent     `json:"events"`
	EventsPageSize    uint16        `json:"events_page_size"`
	EventsPageIndex   uint64        `json:"events_page_index"`
}

// FtEvent is one of Mint, Transfer or Burn.
type FtEvent struct {
	Mint     *FtMintEvent     `json:"Mint,omitempty"`
	Transfer *FtTransferEvent `json:"Transfer,omitempty"`
	Burn     *FtBurnEvent     `json:"Burn,omitempty"`
}

type FtMintEvent struct {
	Recipient  string `json:"recipient"`
	Amount     string `json:"amount"`
	BlockIndex uint64 `json:"block_index"`
	EventIndex uint64 `json:"event_index"`
}

type FtTransferEvent struct {
	Sender     string `json:"sender"`
	Recipient  string `json:"recipient"`
	Amount     string `json:"amount"`
	BlockIndex uint64 `json:"block_index"`
	EventIndex uint64 `json:"event_index"`
}

type FtBurnEvent struct {
	Sender     string `json:"sender"`
	Amount     string `json:"amount"`
	BlockIndex uint64 `json:"block_index"`
	EventIndex uint64 `json:"event_index"`
}

// StoredEntry is a key/value pair with the block and transaction that last wrote it.
// On the wire it is the tuple [[key, value], block_identifier, transaction_identifier].
type StoredEntry struct {
	Key         string
	Value       string
	Block       BlockIdentifier
	Transaction TransactionIdentifier
}

// MarshalJSON encodes the entry as its wire tuple.
func (e StoredEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		[2]string{e.Key, e.Value},
		e.Block,
		e.Transaction,
	})
}

// UnmarshalJSON decodes the wire tuple.
func (e *StoredEntry) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("decode stored entry: %w", err)
	}
	if len(parts) != 3 {
		return fmt.Errorf("decode stored entry: expected 3 elements, got %d", len(parts))
	}
	var pair [2]string
	if err := json.Unmarshal(parts[0], &pair); err != nil {
		return fmt.Errorf("decode stored entry pair: %w", err)
	}
	var block BlockIdentifier
	if err := json.Unmarshal(parts[1], &block); err != nil {
		return fmt.Errorf("decode stored entry block: %w", err)
	}
	var tx TransactionIdentifier
	if err := json.Unmarshal(parts[2], &tx); err != nil {
		return fmt.Errorf("decode stored entry transaction: %w", err)
	}
	*e = StoredEntry{Key: pair[0], Value: pair[1], Block: block, Transaction: tx}
	return nil
}
