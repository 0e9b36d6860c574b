package service

import (
	"context"

	"github.com/goodnatureofminers/devnet-explorer/internal/model"
	"github.com/goodnatureofminers/devnet-explorer/internal/networking"
	"github.com/goodnatureofminers/devnet-explorer/internal/state"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RequestBuilder interface {
		SelectManifest(path string) bool
		WatchField(contractIdentifier, fieldName string) bool
		QueueControl(cmd model.NetworkControlRequest) bool
		Reset()
		Status() networking.Status
		LatestKnownBlock(id model.FieldIdentifier) (model.BlockIdentifier, bool)
	}
	FieldStore interface {
		Contracts() []model.Contract
		Contract(contractIdentifier string) (model.Contract, bool)
		FieldSnapshot(id model.FieldIdentifier) (model.FieldValues, bool)
		SetActiveField(contractIdentifier, fieldName string)
		ActivateDefaultField() (model.FieldIdentifier, bool)
		ActiveField() (string, model.FieldIdentifier)
		ToggleBookmark(id model.FieldIdentifier) bool
		ToggleNotification(id model.FieldIdentifier) bool
		Preference(id model.FieldIdentifier) state.Preference
		Bookmarks() []model.FieldIdentifier
		ResetSession()
	}
	BlockLedger interface {
		Tip(chain model.Chain) (model.Block, bool)
		Reset()
	}
	PreferenceWriter interface {
		Add(ctx context.Context, id model.FieldIdentifier, pref state.Preference) error
	}
	Nudger interface {
		Notify()
		Reconnect()
	}
)
