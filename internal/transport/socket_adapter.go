// Package transport carries the sync protocol over a websocket and exposes the view API.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/devnet-explorer/internal/clock"
	"github.com/goodnatureofminers/devnet-explorer/internal/model"
)

const textMessage = 1

// ErrNotConnected is returned when a write is attempted without a connection.
var ErrNotConnected = errors.New("not connected to backend")

// AdapterConfig tunes the polling cadence and send throttling.
type AdapterConfig struct {
	PollInterval time.Duration
	SendRate     int
}

// DefaultAdapterConfig polls every five seconds.
func DefaultAdapterConfig() AdapterConfig {
	return AdapterConfig{
		PollInterval: 5 * time.Second,
		SendRate:     10,
	}
}

type frame struct {
	conn Conn
	data []byte
	err  error
}

// Adapter owns the backend connection. Its Run loop is the only sender and
// the only router of inbound updates.
type Adapter struct {
	logger   *zap.Logger
	dialer   Dialer
	builder  RequestBuilder
	fields   FieldStore
	ledger   BlockLedger
	observer UpdateObserver
	metrics  Metrics
	nudges   *Nudges

	pollInterval time.Duration
	limiter      ratelimit.Limiter
	newTicker    func(time.Duration) clock.Ticker

	conn   Conn
	frames chan frame
}

// NewAdapter wires the adapter. observer may be nil.
func NewAdapter(
	dialer Dialer,
	builder RequestBuilder,
	fields FieldStore,
	ledger BlockLedger,
	observer UpdateObserver,
	metrics Metrics,
	nudges *Nudges,
	cfg AdapterConfig,
	logger *zap.Logger,
) (*Adapter, error) {
	switch {
	case dialer == nil:
		return nil, errors.New("dialer is required")
	case builder == nil:
		return nil, errors.New("request builder is required")
	case fields == nil:
		return nil, errors.New("field store is required")
	case ledger == nil:
		return nil, errors.New("block ledger is required")
	case metrics == nil:
		return nil, errors.New("transport metrics is required")
	}
	def := DefaultAdapterConfig()
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.SendRate <= 0 {
		cfg.SendRate = def.SendRate
	}
	if nudges == nil {
		nudges = NewNudges()
	}
	return &Adapter{
		logger:       logger.Named("socketAdapter"),
		dialer:       dialer,
		builder:      builder,
		fields:       fields,
		ledger:       ledger,
		observer:     observer,
		metrics:      metrics,
		nudges:       nudges,
		pollInterval: cfg.PollInterval,
		limiter:      ratelimit.New(cfg.SendRate),
		newTicker:    clock.NewTicker,
		frames:       make(chan frame),
	}, nil
}

// Notify asks the loop to send the current request without waiting for a tick.
func (a *Adapter) Notify() {
	a.nudges.Notify()
}

// Reconnect asks the loop to drop the connection so replies to requests
// of an ended session are never routed.
func (a *Adapter) Reconnect() {
	a.nudges.Reconnect()
}

// Run sends once, then polls on every tick until ctx is done.
func (a *Adapter) Run(ctx context.Context) error {
	ticker := a.newTicker(a.pollInterval)
	defer ticker.Stop()
	defer a.dropConn()

	a.logger.Info("sync loop started", zap.Duration("poll_interval", a.pollInterval))
	a.send(ctx)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("sync loop stopped")
			return ctx.Err()
		case <-ticker.C():
			a.builder.Recompute()
			a.send(ctx)
		case <-a.nudges.C():
			a.send(ctx)
		case <-a.nudges.ReconnectC():
			a.reconnect()
		case f := <-a.frames:
			a.handleFrame(f)
		}
	}
}

func (a *Adapter) send(ctx context.Context) {
	a.applyPendingReconnect()
	req, ok := a.builder.NextRequest()
	if !ok {
		return
	}
	if err := a.connect(ctx); err != nil {
		a.logger.Warn("backend unreachable, request deferred",
			zap.String("variant", string(req.Kind())), zap.Error(err))
		return
	}

	a.limiter.Take()
	started := time.Now()
	err := a.write(req)
	a.metrics.ObserveSend(req.Kind(), err, started)
	if err != nil {
		a.logger.Warn("send failed", zap.String("variant", string(req.Kind())), zap.Error(err))
		a.dropConn()
		return
	}
	a.logger.Debug("request sent",
		zap.String("variant", string(req.Kind())),
		zap.Uint64("protocol_id", req.ProtocolID),
		zap.Uint64("nonce", req.Nonce))
	a.builder.RequestSent(req)
}

func (a *Adapter) write(req model.Request) error {
	if a.conn == nil {
		return ErrNotConnected
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	if err := a.conn.WriteMessage(textMessage, payload); err != nil {
		return fmt.Errorf("write request: %w", err)
	}
	return nil
}

func (a *Adapter) connect(ctx context.Context) error {
	if a.conn != nil {
		return nil
	}
	started := time.Now()
	conn, err := a.dialer.Dial(ctx)
	a.metrics.ObserveDial(err, started)
	if err != nil {
		return fmt.Errorf("dial backend: %w", err)
	}
	a.conn = conn
	a.logger.Info("connected to backend")
	go a.read(ctx, conn)
	return nil
}

func (a *Adapter) read(ctx context.Context, conn Conn) {
	for {
		_, data, err := conn.ReadMessage()
		select {
		case a.frames <- frame{conn: conn, data: data, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

func (a *Adapter) dropConn() {
	if a.conn == nil {
		return
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Debug("close connection", zap.Error(err))
	}
	a.conn = nil
}

func (a *Adapter) reconnect() {
	if a.conn == nil {
		return
	}
	a.logger.Info("session ended, dropping connection")
	a.dropConn()
}

// applyPendingReconnect honors a reconnect request that raced with a tick,
// a nudge or an inbound frame.
func (a *Adapter) applyPendingReconnect() {
	select {
	case <-a.nudges.ReconnectC():
		a.reconnect()
	default:
	}
}

func (a *Adapter) handleFrame(f frame) {
	a.applyPendingReconnect()
	if f.conn != a.conn {
		return
	}
	if f.err != nil {
		a.logger.Warn("connection lost", zap.Error(f.err))
		a.dropConn()
		return
	}
	_ = a.HandleMessage(f.data)
}

// HandleMessage decodes one inbound frame, routes it into the stores and
// refreshes the next request. Undecodable frames are dropped.
func (a *Adapter) HandleMessage(data []byte) error {
	update, err := model.DecodeUpdate(data)
	kind := update.Kind()
	a.metrics.ObserveUpdate(kind, err)
	if err != nil {
		a.logger.Warn("dropping undecodable message", zap.Int("size", len(data)), zap.Error(err))
		return err
	}

	a.route(kind, update)
	if a.observer != nil {
		a.observer.UpdateApplied(kind)
	}
	a.builder.Recompute()
	return nil
}

func (a *Adapter) route(kind model.UpdateKind, update model.Update) {
	switch kind {
	case model.UpdateBootNetwork:
		data := update.Update.BootNetwork
		if !a.builder.ApplyBootAck(*data) {
			return
		}
		if len(data.Contracts) > 0 {
			a.fields.ReplaceContracts(data.Contracts)
		}

	case model.UpdateStateExplorerInitialization:
		a.fields.ReplaceContracts(update.Update.StateExplorerInitialization.Contracts)

	case model.UpdateStateExplorerWatch:
		data := update.Update.StateExplorerWatch
		id := data.FieldIdentifier()
		a.fields.UpsertFieldSnapshot(id, data.FieldValues)
		a.ledger.AppendBlocks(model.Stacks, data.StacksBlocks)
		a.ledger.AppendBlocks(model.Bitcoin, data.BitcoinBlocks)
		if last, ok := data.LastStacksBlock(); ok {
			a.builder.AdvanceCursor(id, last)
		}

	case model.UpdateFatalError:
		a.logger.Error("backend reported fatal error", zap.String("message", *update.Update.FatalError))
		a.builder.RecordBackendError(*update.Update.FatalError)

	case model.UpdateError:
		a.logger.Warn("backend reported error", zap.String("message", *update.Update.Error))
		a.builder.RecordBackendError(*update.Update.Error)

	default:
		a.logger.Debug("acknowledgment ignored", zap.String("variant", string(kind)), zap.String("msg", update.Msg))
	}
}
