// Package networking drives the boot and watch protocol spoken with the devnet backend.
package networking

import (
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/devnet-explorer/internal/model"
)

// Phase is the progress of a manifest session.
type Phase string

var (
	PhaseIdle             Phase = "idle"
	PhaseManifestSelected Phase = "manifest_selected"
	PhaseBootRequested    Phase = "boot_requested"
	PhaseBootAcknowledged Phase = "boot_acknowledged"
	PhaseProtocolReady    Phase = "protocol_ready"
	PhaseWatching         Phase = "watching"
)

// bootProtocolID is the protocol id carried by boot requests, before the
// backend has assigned one.
const bootProtocolID uint64 = 1

// WatchedField is the field being polled and the last block known for it.
type WatchedField struct {
	Target model.ContractFieldTarget
	Cursor model.BlockIdentifier
}

// RequestBuilder holds boot and watch progress and computes the single next
// request to send. The slot is recomputed, never queued: a stale value is
// replaced by a fresher one before the next send.
type RequestBuilder struct {
	mu     sync.Mutex
	logger *zap.Logger

	manifestPath  string
	bootRequested bool
	bootStatus    *model.BootNetworkData
	statusText    string
	backendError  string

	protocolDeployed bool
	hasProtocolID    bool
	protocolID       uint64
	protocolName     string

	watched       *WatchedField
	latestByField map[model.FieldIdentifier]model.BlockIdentifier
	control       model.NetworkControlRequest

	nonce uint64
	next  *model.Request
}

// NewRequestBuilder returns a builder in the idle phase.
func NewRequestBuilder(logger *zap.Logger) *RequestBuilder {
	return &RequestBuilder{
		logger:        logger,
		latestByField: map[model.FieldIdentifier]model.BlockIdentifier{},
	}
}

// SelectManifest starts a session for a manifest. It is accepted from the
// idle phase, or to replace a manifest the backend has not acknowledged yet.
// Selecting the current manifest again, or any manifest once booted, is a no-op.
func (b *RequestBuilder) SelectManifest(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if path == "" || path == b.manifestPath {
		return false
	}
	if b.manifestPath != "" && b.bootStatus != nil {
		b.logger.Debug("manifest ignored, session already booted",
			zap.String("manifest", path), zap.String("current", b.manifestPath))
		return false
	}

	b.manifestPath = path
	b.bootRequested = false
	b.watched = nil
	b.control = model.NetworkControlRequest{}
	b.protocolDeployed = false
	b.hasProtocolID = false
	b.protocolID = 0
	b.next = nil
	b.logger.Info("manifest selected", zap.String("manifest", path))
	b.recomputeLocked()
	return true
}

// Recompute refreshes the next request from the current state and returns it.
func (b *RequestBuilder) Recompute() (model.Request, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recomputeLocked()
	return b.nextLocked()
}

// NextRequest returns the request currently in the slot.
func (b *RequestBuilder) NextRequest() (model.Request, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nextLocked()
}

func (b *RequestBuilder) nextLocked() (model.Request, bool) {
	if b.next == nil {
		return model.Request{}, false
	}
	return *b.next, true
}

func (b *RequestBuilder) recomputeLocked() {
	switch {
	case b.manifestPath == "":
		b.next = nil
		return
	case b.bootStatus == nil:
		b.next = &model.Request{
			ProtocolID: bootProtocolID,
			Request: model.RequestPayload{
				BootNetwork: &model.BootNetworkRequest{ManifestPath: b.manifestPath},
			},
		}
		return
	case !b.protocolDeployed:
		// Re-issuing BootNetwork while the devnet initializes is unsafe.
		b.next = nil
		return
	case !b.hasProtocolID:
		b.next = nil
		return
	}

	if !b.control.Empty() {
		cmd := b.control
		b.next = &model.Request{
			ProtocolID: b.protocolID,
			Request:    model.RequestPayload{NetworkControl: &cmd},
		}
		return
	}

	if b.watched == nil {
		b.next = nil
		return
	}

	b.nonce++
	target := b.watched.Target
	b.next = &model.Request{
		ProtocolID: b.protocolID,
		Nonce:      b.nonce,
		Request: model.RequestPayload{
			StateExplorerWatch: &model.StateExplorerWatchRequest{
				StacksBlockIdentifier: b.watched.Cursor,
				Target:                model.WatchTarget{ContractField: &target},
			},
		},
	}
}

// RequestSent records that a request left the client.
func (b *RequestBuilder) RequestSent(req model.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch req.Kind() {
	case model.RequestBootNetwork:
		if req.Request.BootNetwork.ManifestPath == b.manifestPath && !b.bootRequested {
			b.bootRequested = true
			b.logger.Info("boot requested", zap.String("manifest", b.manifestPath))
		}
	case model.RequestNetworkControl:
		sent := *req.Request.NetworkControl
		b.control = model.NetworkControlRequest{
			ToggleAutoMining:   b.control.ToggleAutoMining && !sent.ToggleAutoMining,
			InvalidateChainTip: b.control.InvalidateChainTip && !sent.InvalidateChainTip,
			MineBlock:          b.control.MineBlock && !sent.MineBlock,
		}
		b.recomputeLocked()
	}
}

// ApplyBootAck records a boot acknowledgment. The first acknowledgment of a
// session is kept as the boot status; later ones only refresh the display
// status and latch readiness once the protocol is reported deployed.
func (b *RequestBuilder) ApplyBootAck(data model.BootNetworkData) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.manifestPath == "" {
		b.logger.Debug("boot acknowledgment without session ignored")
		return false
	}

	if b.bootStatus == nil {
		status := data
		b.bootStatus = &status
		b.logger.Info("boot acknowledged",
			zap.String("status", data.Status),
			zap.Bool("protocol_deployed", data.ProtocolDeployed))
	}
	b.statusText = data.Status

	if data.ProtocolDeployed && !b.protocolDeployed {
		b.protocolDeployed = true
		b.hasProtocolID = true
		b.protocolID = data.ProtocolID
		b.protocolName = data.ProtocolName
		b.logger.Info("protocol ready",
			zap.Uint64("protocol_id", data.ProtocolID),
			zap.String("protocol_name", data.ProtocolName),
			zap.Int("contracts", len(data.Contracts)))
	}

	b.recomputeLocked()
	return true
}

// WatchField selects the field to poll. It has no effect until the protocol
// is ready. The cursor resumes from the last block known for the field.
func (b *RequestBuilder) WatchField(contractIdentifier, fieldName string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.protocolDeployed || !b.hasProtocolID {
		return false
	}
	if contractIdentifier == "" || fieldName == "" {
		return false
	}

	target := model.ContractFieldTarget{ContractIdentifier: contractIdentifier, FieldName: fieldName}
	cursor, ok := b.latestByField[target.FieldIdentifier()]
	if !ok {
		cursor = model.GenesisCursor
	}
	b.watched = &WatchedField{Target: target, Cursor: cursor}
	b.logger.Debug("watching field",
		zap.String("field", string(target.FieldIdentifier())),
		zap.Uint64("cursor_index", cursor.Index))
	b.recomputeLocked()
	return true
}

// AdvanceCursor moves the last known block of a field forward. A block with
// a higher index advances the cursor, and so does a different hash at the
// same index. Lower indexes and the block already recorded are ignored.
func (b *RequestBuilder) AdvanceCursor(id model.FieldIdentifier, block model.BlockIdentifier) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if current, ok := b.latestByField[id]; ok && !cursorAdvances(current, block) {
		return false
	}
	b.latestByField[id] = block
	if b.watched != nil && b.watched.Target.FieldIdentifier() == id {
		b.watched.Cursor = block
	}
	b.recomputeLocked()
	return true
}

func cursorAdvances(current, next model.BlockIdentifier) bool {
	if next.Index != current.Index {
		return next.Index > current.Index
	}
	return !current.SameBlock(next)
}

// QueueControl merges a devnet control command into the pending one. It is
// refused until the protocol is ready.
func (b *RequestBuilder) QueueControl(cmd model.NetworkControlRequest) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cmd.Empty() || !b.protocolDeployed || !b.hasProtocolID {
		return false
	}
	b.control = b.control.Merge(cmd)
	b.recomputeLocked()
	return true
}

// RecordBackendError keeps an error reported by the backend for display.
func (b *RequestBuilder) RecordBackendError(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.backendError = message
}

// Reset ends the session and returns to the idle phase.
func (b *RequestBuilder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.manifestPath = ""
	b.bootRequested = false
	b.bootStatus = nil
	b.statusText = ""
	b.backendError = ""
	b.protocolDeployed = false
	b.hasProtocolID = false
	b.protocolID = 0
	b.protocolName = ""
	b.watched = nil
	b.latestByField = map[model.FieldIdentifier]model.BlockIdentifier{}
	b.control = model.NetworkControlRequest{}
	b.next = nil
	b.logger.Info("session reset")
}

// Phase returns the current session phase.
func (b *RequestBuilder) Phase() Phase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phaseLocked()
}

func (b *RequestBuilder) phaseLocked() Phase {
	switch {
	case b.manifestPath == "":
		return PhaseIdle
	case b.bootStatus == nil && !b.bootRequested:
		return PhaseManifestSelected
	case b.bootStatus == nil:
		return PhaseBootRequested
	case !b.protocolDeployed:
		return PhaseBootAcknowledged
	case b.watched == nil:
		return PhaseProtocolReady
	}
	return PhaseWatching
}

// Status is a read-only view of the session for display.
type Status struct {
	Phase            Phase
	ManifestPath     string
	StatusText       string
	BackendError     string
	ProtocolDeployed bool
	ProtocolID       uint64
	ProtocolName     string
	BootStatus       *model.BootNetworkData
	Watched          *WatchedField
}

// Status returns a copy of the session state.
func (b *RequestBuilder) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	st := Status{
		Phase:            b.phaseLocked(),
		ManifestPath:     b.manifestPath,
		StatusText:       b.statusText,
		BackendError:     b.backendError,
		ProtocolDeployed: b.protocolDeployed,
		ProtocolID:       b.protocolID,
		ProtocolName:     b.protocolName,
	}
	if b.bootStatus != nil {
		boot := *b.bootStatus
		st.BootStatus = &boot
	}
	if b.watched != nil {
		w := *b.watched
		st.Watched = &w
	}
	return st
}

// IsNetworkBooting reports whether the protocol is not deployed yet.
func (b *RequestBuilder) IsNetworkBooting() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.protocolDeployed
}

// LatestKnownBlock returns the cursor recorded for a field.
func (b *RequestBuilder) LatestKnownBlock(id model.FieldIdentifier) (model.BlockIdentifier, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	block, ok := b.latestByField[id]
	return block, ok
}
