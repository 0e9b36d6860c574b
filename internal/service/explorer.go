// Package service turns view intents into state machine transitions and
// assembles what the view renders.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/devnet-explorer/internal/model"
	"github.com/goodnatureofminers/devnet-explorer/internal/networking"
)

var (
	// ErrIntentRejected is returned when the session phase does not allow an intent.
	ErrIntentRejected = errors.New("intent rejected in current phase")
	// ErrInvalidIntent is returned for intents with missing arguments.
	ErrInvalidIntent = errors.New("invalid intent")
	// ErrUnknownField is returned when a field is not declared by the deployed contracts.
	ErrUnknownField = errors.New("unknown contract field")
)

// ExplorerService is the entry point of every view intent.
type ExplorerService struct {
	builder RequestBuilder
	fields  FieldStore
	ledger  BlockLedger
	prefs   PreferenceWriter
	nudger  Nudger
	logger  *zap.Logger

	mu        sync.Mutex
	sessionID string
}

// NewExplorerService builds the service. prefs may be nil when preferences are not persisted.
func NewExplorerService(
	builder RequestBuilder,
	fields FieldStore,
	ledger BlockLedger,
	prefs PreferenceWriter,
	nudger Nudger,
	logger *zap.Logger,
) (*ExplorerService, error) {
	switch {
	case builder == nil:
		return nil, errors.New("request builder is required")
	case fields == nil:
		return nil, errors.New("field store is required")
	case ledger == nil:
		return nil, errors.New("block ledger is required")
	case nudger == nil:
		return nil, errors.New("nudger is required")
	}
	return &ExplorerService{
		builder:   builder,
		fields:    fields,
		ledger:    ledger,
		prefs:     prefs,
		nudger:    nudger,
		logger:    logger.Named("explorer"),
		sessionID: uuid.NewString(),
	}, nil
}

func (s *ExplorerService) session() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// SelectManifest starts a session. Re-selecting the current manifest succeeds
// without effect. Replacing an unacknowledged manifest drops the connection.
func (s *ExplorerService) SelectManifest(path string) error {
	if path == "" {
		return fmt.Errorf("%w: manifest path is empty", ErrInvalidIntent)
	}
	prior := s.builder.Status()
	if s.builder.SelectManifest(path) {
		s.logger.Info("manifest selected", zap.String("session", s.session()), zap.String("manifest", path))
		if prior.ManifestPath != "" {
			s.nudger.Reconnect()
		}
		s.nudger.Notify()
		return nil
	}
	if prior.ManifestPath == path {
		return nil
	}
	return fmt.Errorf("%w: select manifest during %s", ErrIntentRejected, prior.Phase)
}

// WatchField polls a field and makes it the active one.
func (s *ExplorerService) WatchField(contractIdentifier, fieldName string) error {
	if contractIdentifier == "" || fieldName == "" {
		return fmt.Errorf("%w: contract identifier and field name are required", ErrInvalidIntent)
	}
	if c, ok := s.fields.Contract(contractIdentifier); ok && !c.HasField(fieldName) {
		return fmt.Errorf("%w: %s", ErrUnknownField, model.NewFieldIdentifier(contractIdentifier, fieldName))
	}
	if !s.builder.WatchField(contractIdentifier, fieldName) {
		return fmt.Errorf("%w: watch field during %s", ErrIntentRejected, s.builder.Status().Phase)
	}
	s.fields.SetActiveField(contractIdentifier, fieldName)
	s.logger.Debug("field watched",
		zap.String("session", s.session()),
		zap.String("field", string(model.NewFieldIdentifier(contractIdentifier, fieldName))))
	s.nudger.Notify()
	return nil
}

// ToggleBookmark flips the bookmark of a field given as contract::field.
func (s *ExplorerService) ToggleBookmark(ctx context.Context, raw string) (bool, error) {
	id, err := model.ParseFieldIdentifier(raw)
	if err != nil {
		return false, err
	}
	on := s.fields.ToggleBookmark(id)
	s.persist(ctx, id)
	return on, nil
}

// ToggleNotification flips the notification flag of a field given as contract::field.
func (s *ExplorerService) ToggleNotification(ctx context.Context, raw string) (bool, error) {
	id, err := model.ParseFieldIdentifier(raw)
	if err != nil {
		return false, err
	}
	on := s.fields.ToggleNotification(id)
	s.persist(ctx, id)
	return on, nil
}

func (s *ExplorerService) persist(ctx context.Context, id model.FieldIdentifier) {
	if s.prefs == nil {
		return
	}
	if err := s.prefs.Add(ctx, id, s.fields.Preference(id)); err != nil {
		s.logger.Warn("preference not queued", zap.String("field", string(id)), zap.Error(err))
	}
}

// ControlNetwork queues a devnet miner command.
func (s *ExplorerService) ControlNetwork(cmd model.NetworkControlRequest) error {
	if cmd.Empty() {
		return fmt.Errorf("%w: no network command requested", ErrInvalidIntent)
	}
	if !s.builder.QueueControl(cmd) {
		return fmt.Errorf("%w: control network during %s", ErrIntentRejected, s.builder.Status().Phase)
	}
	s.logger.Info("network command queued",
		zap.String("session", s.session()),
		zap.Bool("toggle_auto_mining", cmd.ToggleAutoMining),
		zap.Bool("invalidate_chain_tip", cmd.InvalidateChainTip),
		zap.Bool("mine_block", cmd.MineBlock))
	s.nudger.Notify()
	return nil
}

// ResetSession drops the session and its connection so another manifest can be selected.
func (s *ExplorerService) ResetSession() {
	s.builder.Reset()
	s.fields.ResetSession()
	s.ledger.Reset()

	s.mu.Lock()
	previous := s.sessionID
	s.sessionID = uuid.NewString()
	s.mu.Unlock()

	s.logger.Info("session reset", zap.String("previous_session", previous), zap.String("session", s.session()))
	s.nudger.Reconnect()
	s.nudger.Notify()
}

// UpdateApplied reacts to contract arrival: the default field becomes active
// and is watched once the protocol is ready.
func (s *ExplorerService) UpdateApplied(kind model.UpdateKind) {
	if kind != model.UpdateBootNetwork && kind != model.UpdateStateExplorerInitialization {
		return
	}
	id, ok := s.fields.ActivateDefaultField()
	if !ok {
		return
	}
	st := s.builder.Status()
	if st.Phase != networking.PhaseProtocolReady {
		return
	}
	if s.builder.WatchField(id.ContractIdentifier(), id.FieldName()) {
		s.logger.Info("watching default field", zap.String("session", s.session()), zap.String("field", string(id)))
	}
}
