package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RequestKind names the variant of an outbound request.
type RequestKind string

var (
	RequestBootNetwork        RequestKind = "BootNetwork"
	RequestStateExplorerWatch RequestKind = "StateExplorerWatch"
	RequestNetworkControl     RequestKind = "NetworkControl"
)

// Request is the outbound envelope sent to the backend.
type Request struct {
	ProtocolID uint64         `json:"protocol_id"`
	Nonce      uint64         `json:"nonce,omitempty"`
	Request    RequestPayload `json:"request"`
}

// Kind returns the variant carried by the request.
func (r Request) Kind() RequestKind {
	switch {
	case r.Request.BootNetwork != nil:
		return RequestBootNetwork
	case r.Request.StateExplorerWatch != nil:
		return RequestStateExplorerWatch
	case r.Request.NetworkControl != nil:
		return RequestNetworkControl
	}
	return ""
}

// RequestPayload is externally tagged: exactly one field is set.
type RequestPayload struct {
	BootNetwork        *BootNetworkRequest        `json:"BootNetwork,omitempty"`
	StateExplorerWatch *StateExplorerWatchRequest `json:"StateExplorerWatch,omitempty"`
	NetworkControl     *NetworkControlRequest     `json:"NetworkControl,omitempty"`
}

// BootNetworkRequest asks the backend to boot a devnet for a manifest.
type BootNetworkRequest struct {
	ManifestPath string `json:"manifest_path"`
}

// StateExplorerWatchRequest polls a watched target from a known block.
type StateExplorerWatchRequest struct {
	StacksBlockIdentifier BlockIdentifier `json:"stacks_block_identifier"`
	Target                WatchTarget     `json:"target"`
}

// WatchTarget is externally tagged; only contract fields are watchable.
type WatchTarget struct {
	ContractField *ContractFieldTarget `json:"ContractField,omitempty"`
}

// ContractFieldTarget names a contract field.
type ContractFieldTarget struct {
	ContractIdentifier string `json:"contract_identifier"`
	FieldName          string `json:"field_name"`
}

// FieldIdentifier derives the identifier of the target.
func (t ContractFieldTarget) FieldIdentifier() FieldIdentifier {
	return NewFieldIdentifier(t.ContractIdentifier, t.FieldName)
}

// NetworkControlRequest drives the devnet miner.
type NetworkControlRequest struct {
	ToggleAutoMining   bool `json:"toggle_auto_mining"`
	InvalidateChainTip bool `json:"invalidate_chain_tip"`
	MineBlock          bool `json:"mine_block"`
}

// Empty reports whether no command is requested.
func (c NetworkControlRequest) Empty() bool {
	return !c.ToggleAutoMining && !c.InvalidateChainTip && !c.MineBlock
}

// Merge combines two pending commands.
func (c NetworkControlRequest) Merge(other NetworkControlRequest) NetworkControlRequest {
	return NetworkControlRequest{
		ToggleAutoMining:   c.ToggleAutoMining || other.ToggleAutoMining,
		InvalidateChainTip: c.InvalidateChainTip || other.InvalidateChainTip,
		MineBlock:          c.MineBlock || other.MineBlock,
	}
}

// UpdateKind names the variant of an inbound update.
type UpdateKind string

var (
	UpdateBootNetwork                 UpdateKind = "BootNetwork"
	UpdateStateExplorerInitialization UpdateKind = "StateExplorerInitialization"
	UpdateStateExplorerWatch          UpdateKind = "StateExplorerWatch"
	UpdateFatalError                  UpdateKind = "FatalError"
	UpdateError                       UpdateKind = "Error"
	UpdateNoop                        UpdateKind = "Noop"
	// UpdateAck is a bare {"msg": ...} acknowledgment without an update.
	UpdateAck UpdateKind = "Ack"
)

// Update is the inbound envelope received from the backend.
type Update struct {
	Update *UpdatePayload `json:"update,omitempty"`
	Msg    string         `json:"msg,omitempty"`
}

// UpdatePayload is externally tagged: exactly one field is set.
type UpdatePayload struct {
	BootNetwork                 *BootNetworkData                 `json:"BootNetwork,omitempty"`
	StateExplorerInitialization *StateExplorerInitializationData `json:"StateExplorerInitialization,omitempty"`
	StateExplorerWatch          *StateExplorerWatchData          `json:"StateExplorerWatch,omitempty"`
	FatalError                  *string                          `json:"FatalError,omitempty"`
	Error                       *string                          `json:"Error,omitempty"`
	Noop                        *struct{}                        `json:"Noop,omitempty"`
}

// Kind returns the variant carried by the update, or "" when it carries none or several.
func (u Update) Kind() UpdateKind {
	if u.Update == nil {
		if u.Msg != "" {
			return UpdateAck
		}
		return ""
	}
	p := u.Update
	var kind UpdateKind
	set := 0
	for _, candidate := range []struct {
		ok   bool
		kind UpdateKind
	}{
		{p.BootNetwork != nil, UpdateBootNetwork},
		{p.StateExplorerInitialization != nil, UpdateStateExplorerInitialization},
		{p.StateExplorerWatch != nil, UpdateStateExplorerWatch},
		{p.FatalError != nil, UpdateFatalError},
		{p.Error != nil, UpdateError},
		{p.Noop != nil, UpdateNoop},
	} {
		if candidate.ok {
			kind = candidate.kind
			set++
		}
	}
	if set != 1 {
		return ""
	}
	return kind
}

// ErrUnknownUpdate is returned when an envelope carries no recognised variant.
var ErrUnknownUpdate = errors.New("unknown update variant")

// DecodeUpdate parses an inbound frame and checks it carries exactly one known variant.
func DecodeUpdate(data []byte) (Update, error) {
	var u Update
	if err := json.Unmarshal(data, &u); err != nil {
		return Update{}, fmt.Errorf("decode update: %w", err)
	}
	if u.Kind() == "" {
		return Update{}, ErrUnknownUpdate
	}
	if w := u.Update; w != nil && w.StateExplorerWatch != nil {
		if err := w.StateExplorerWatch.FieldValues.Validate(); err != nil {
			return Update{}, fmt.Errorf("decode watch update: %w", err)
		}
	}
	return u, nil
}

// BootNetworkData reports devnet boot progress.
type BootNetworkData struct {
	Status             string     `json:"status"`
	BitcoinChainHeight uint64     `json:"bitcoin_chain_height"`
	StacksChainHeight  uint64     `json:"stacks_chain_height"`
	ProtocolDeployed   bool       `json:"protocol_deployed"`
	Contracts          []Contract `json:"contracts"`
	ProtocolID         uint64     `json:"protocol_id"`
	ProtocolName       string     `json:"protocol_name"`
}

// StateExplorerInitializationData carries the deployed contract set.
type StateExplorerInitializationData struct {
	Contracts []Contract `json:"contracts"`
}

// StateExplorerWatchData is the reply to a watch request.
type StateExplorerWatchData struct {
	StacksBlocks       []Block     `json:"stacks_blocks"`
	BitcoinBlocks      []Block     `json:"bitcoin_blocks"`
	ContractIdentifier string      `json:"contract_identifier"`
	FieldName          string      `json:"field_name"`
	FieldValues        FieldValues `json:"field_values"`
}

// FieldIdentifier derives the identifier of the field the reply is about.
func (d StateExplorerWatchData) FieldIdentifier() FieldIdentifier {
	return NewFieldIdentifier(d.ContractIdentifier, d.FieldName)
}

// LastStacksBlock returns the identifier of the last stacks block carried, if any.
func (d StateExplorerWatchData) LastStacksBlock() (BlockIdentifier, bool) {
	if len(d.StacksBlocks) == 0 {
		return BlockIdentifier{}, false
	}
	return d.StacksBlocks[len(d.StacksBlocks)-1].BlockIdentifier, true
}
