package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFieldIdentifier is returned for identifiers without a contract or field part.
var ErrInvalidFieldIdentifier = errors.New("invalid field identifier")

const fieldIdentifierSeparator = "::"

// FieldIdentifier addresses a watchable field as "<contract_identifier>::<field_name>".
type FieldIdentifier string

// NewFieldIdentifier derives the identifier of a contract field.
func NewFieldIdentifier(contractIdentifier, fieldName string) FieldIdentifier {
	return FieldIdentifier(contractIdentifier + fieldIdentifierSeparator + fieldName)
}

// ParseFieldIdentifier splits an identifier on its first separator.
func ParseFieldIdentifier(raw string) (FieldIdentifier, error) {
	contract, field, ok := strings.Cut(raw, fieldIdentifierSeparator)
	if !ok || contract == "" || field == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFieldIdentifier, raw)
	}
	return FieldIdentifier(raw), nil
}

// ContractIdentifier returns the contract part.
func (f FieldIdentifier) ContractIdentifier() string {
	contract, _, _ := strings.Cut(string(f), fieldIdentifierSeparator)
	return contract
}

// FieldName returns the field part.
func (f FieldIdentifier) FieldName() string {
	_, field, _ := strings.Cut(string(f), fieldIdentifierSeparator)
	return field
}

// Contract is a deployed contract and its interface.
type Contract struct {
	ContractIdentifier string            `json:"contract_identifier"`
	Interface          ContractInterface `json:"interface"`
}

// ContractInterface lists the watchable fields of a contract in declaration order.
type ContractInterface struct {
	Functions         []json.RawMessage `json:"functions,omitempty"`
	Variables         []DataVarField    `json:"variables"`
	Maps              []DataMapField    `json:"maps"`
	FungibleTokens    []DataFtField     `json:"fungible_tokens"`
	NonFungibleTokens []DataNftField    `json:"non_fungible_tokens"`
}

// DataVarField describes a data variable.
type DataVarField struct {
	Name   string          `json:"name"`
	Type   json.RawMessage `json:"type,omitempty"`
	Access string          `json:"access,omitempty"`
}

// DataMapField describes a data map.
type DataMapField struct {
	Name  string          `json:"name"`
	Key   json.RawMessage `json:"key,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// DataFtField describes a fungible token ledger.
type DataFtField struct {
	Name string `json:"name"`
}

// DataNftField describes a non-fungible token ledger.
type DataNftField struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type,omitempty"`
}

// DefaultField returns the first field of the contract, preferring variables,
// then maps, then fungible and non-fungible tokens.
func (c Contract) DefaultField() (string, bool) {
	switch {
	case len(c.Interface.Variables) > 0:
		return c.Interface.Variables[0].Name, true
	case len(c.Interface.Maps) > 0:
		return c.Interface.Maps[0].Name, true
	case len(c.Interface.FungibleTokens) > 0:
		return c.Interface.FungibleTokens[0].Name, true
	case len(c.Interface.NonFungibleTokens) > 0:
		return c.Interface.NonFungibleTokens[0].Name, true
	}
	return "", false
}

// HasField reports whether the contract declares a field with the given name.
func (c Contract) HasField(name string) bool {
	for _, v := range c.Interface.Variables {
		if v.Name == name {
			return true
		}
	}
	for _, m := range c.Interface.Maps {
		if m.Name == name {
			return true
		}
	}
	for _, ft := range c.Interface.FungibleTokens {
		if ft.Name == name {
			return true
		}
	}
	for _, nft := range c.Interface.NonFungibleTokens {
		if nft.Name == name {
			return true
		}
	}
	return false
}
