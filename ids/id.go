// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/chainkit/utxowallet/utils/cb58"
)

// IDLen is the length in bytes of an asset ID, a transaction ID, or a
// blockchain ID.
const IDLen = 32

var (
	Empty = ID{}

	errInvalidIDLen = errors.New("invalid ID length")
)

// ID is a 32 byte array used as a unique identifier for assets, transactions,
// and blockchains/chains.
type ID [IDLen]byte

// ToID attempts to convert a byte slice into an ID.
func ToID(bytes []byte) (ID, error) {
	if len(bytes) != IDLen {
		return ID{}, errInvalidIDLen
	}
	var id ID
	copy(id[:], bytes)
	return id, nil
}

// FromString parses a cb58-encoded ID.
func FromString(idStr string) (ID, error) {
	b, err := cb58.Decode(idStr)
	if err != nil {
		return ID{}, err
	}
	return ToID(b)
}

func (id ID) String() string {
	return cb58.Encode(id[:])
}

func (id ID) Bytes() []byte {
	return id[:]
}

// Compare implements sort ordering for IDs, raw-byte ascending.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

func (id ID) Less(other ID) bool {
	return id.Compare(other) == -1
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	if str == "" {
		*id = ID{}
		return nil
	}
	parsed, err := FromString(str)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
