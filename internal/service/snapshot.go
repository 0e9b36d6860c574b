package service

import (
	"github.com/goodnatureofminers/devnet-explorer/internal/model"
	"github.com/goodnatureofminers/devnet-explorer/internal/networking"
)

// WatchedView is the polled field and its cursor.
type WatchedView struct {
	ContractIdentifier string                `json:"contract_identifier"`
	FieldName          string                `json:"field_name"`
	Cursor             model.BlockIdentifier `json:"cursor"`
}

// ActiveFieldView is the field shown by the view.
type ActiveFieldView struct {
	ContractIdentifier string                 `json:"contract_identifier"`
	FieldIdentifier    model.FieldIdentifier  `json:"field_identifier"`
	Values             *model.FieldValues     `json:"values,omitempty"`
	LatestKnownBlock   *model.BlockIdentifier `json:"latest_known_block,omitempty"`
	Bookmarked         bool                   `json:"bookmarked"`
	Notified           bool                   `json:"notified"`
}

// Snapshot is a consistent-enough read of every store for rendering.
type Snapshot struct {
	SessionID          string                  `json:"session_id"`
	Phase              networking.Phase        `json:"phase"`
	Booting            bool                    `json:"booting"`
	ManifestPath       string                  `json:"manifest_path,omitempty"`
	StatusText         string                  `json:"status_text,omitempty"`
	BackendError       string                  `json:"backend_error,omitempty"`
	ProtocolDeployed   bool                    `json:"protocol_deployed"`
	ProtocolID         uint64                  `json:"protocol_id,omitempty"`
	ProtocolName       string                  `json:"protocol_name,omitempty"`
	BitcoinChainHeight uint64                  `json:"bitcoin_chain_height,omitempty"`
	StacksChainHeight  uint64                  `json:"stacks_chain_height,omitempty"`
	Contracts          []model.Contract        `json:"contracts"`
	ActiveField        *ActiveFieldView        `json:"active_field,omitempty"`
	Watched            *WatchedView            `json:"watched,omitempty"`
	Bookmarks          []model.FieldIdentifier `json:"bookmarks"`
	StacksTip          *model.BlockIdentifier  `json:"stacks_tip,omitempty"`
	BitcoinTip         *model.BlockIdentifier  `json:"bitcoin_tip,omitempty"`
}

// Snapshot assembles the view state.
func (s *ExplorerService) Snapshot() Snapshot {
	st := s.builder.Status()
	snap := Snapshot{
		SessionID:        s.session(),
		Phase:            st.Phase,
		Booting:          !st.ProtocolDeployed,
		ManifestPath:     st.ManifestPath,
		StatusText:       st.StatusText,
		BackendError:     st.BackendError,
		ProtocolDeployed: st.ProtocolDeployed,
		ProtocolID:       st.ProtocolID,
		ProtocolName:     st.ProtocolName,
		Contracts:        s.fields.Contracts(),
		Bookmarks:        s.fields.Bookmarks(),
	}
	if st.BootStatus != nil {
		snap.BitcoinChainHeight = st.BootStatus.BitcoinChainHeight
		snap.StacksChainHeight = st.BootStatus.StacksChainHeight
	}
	if st.Watched != nil {
		snap.Watched = &WatchedView{
			ContractIdentifier: st.Watched.Target.ContractIdentifier,
			FieldName:          st.Watched.Target.FieldName,
			Cursor:             st.Watched.Cursor,
		}
	}

	if contract, id := s.fields.ActiveField(); id != "" {
		pref := s.fields.Preference(id)
		view := &ActiveFieldView{
			ContractIdentifier: contract,
			FieldIdentifier:    id,
			Bookmarked:         pref.Bookmarked,
			Notified:           pref.Notified,
		}
		if values, ok := s.fields.FieldSnapshot(id); ok {
			view.Values = &values
		}
		if block, ok := s.builder.LatestKnownBlock(id); ok {
			view.LatestKnownBlock = &block
		}
		snap.ActiveField = view
	}

	if tip, ok := s.ledger.Tip(model.Stacks); ok {
		id := tip.BlockIdentifier
		snap.StacksTip = &id
	}
	if tip, ok := s.ledger.Tip(model.Bitcoin); ok {
		id := tip.BlockIdentifier
		snap.BitcoinTip = &id
	}
	return snap
}
