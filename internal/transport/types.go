package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/devnet-explorer/internal/model"
	"github.com/goodnatureofminers/devnet-explorer/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Conn interface {
		ReadMessage() (int, []byte, error)
		WriteMessage(messageType int, data []byte) error
		Close() error
	}
	Dialer interface {
		Dial(ctx context.Context) (Conn, error)
	}
	RequestBuilder interface {
		Recompute() (model.Request, bool)
		NextRequest() (model.Request, bool)
		RequestSent(req model.Request)
		ApplyBootAck(data model.BootNetworkData) bool
		AdvanceCursor(id model.FieldIdentifier, block model.BlockIdentifier) bool
		RecordBackendError(message string)
	}
	FieldStore interface {
		ReplaceContracts(contracts []model.Contract)
		UpsertFieldSnapshot(id model.FieldIdentifier, values model.FieldValues)
	}
	BlockLedger interface {
		AppendBlocks(chain model.Chain, blocks []model.Block)
	}
	UpdateObserver interface {
		UpdateApplied(kind model.UpdateKind)
	}
	Metrics interface {
		ObserveSend(kind model.RequestKind, err error, started time.Time)
		ObserveUpdate(kind model.UpdateKind, err error)
		ObserveDial(err error, started time.Time)
	}
	Explorer interface {
		Snapshot() service.Snapshot
		SelectManifest(path string) error
		WatchField(contractIdentifier, fieldName string) error
		ToggleBookmark(ctx context.Context, raw string) (bool, error)
		ToggleNotification(ctx context.Context, raw string) (bool, error)
		ControlNetwork(cmd model.NetworkControlRequest) error
		ResetSession()
	}
)
