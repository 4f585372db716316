// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package persist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

// memStore is a trivial in-memory KVStore for exercising Load/Save
// without a real cache implementation.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Has(key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func testUTXO(txID ids.ID, assetID ids.ID, amt uint64, addr ids.Address) *avax.UTXO {
	return &avax.UTXO{
		UTXOID: avax.UTXOID{TxID: txID, OutputIndex: 0},
		Asset:  avax.Asset{ID: assetID},
		Out: &secp256k1fx.TransferOutput{
			Amt:          amt,
			OutputOwners: *secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1),
		},
	}
}

func encodeSet(s *avax.UTXOSet) ([]byte, error) {
	var out [][]byte
	total := 0
	for _, u := range s.GetAllUTXOs() {
		b, err := u.Bytes()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
		total += len(b) + 4
	}
	buf := make([]byte, 0, total+4)
	buf = append(buf, byte(len(out)>>24), byte(len(out)>>16), byte(len(out)>>8), byte(len(out)))
	for _, b := range out {
		n := len(b)
		buf = append(buf, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
		buf = append(buf, b...)
	}
	return buf, nil
}

func decodeSet(b []byte) (*avax.UTXOSet, error) {
	set := avax.NewUTXOSet()
	if len(b) < 4 {
		return set, nil
	}
	count := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
	b = b[4:]
	for i := 0; i < count; i++ {
		n := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
		b = b[4:]
		utxo, err := avax.ParseUTXO(b[:n])
		if err != nil {
			return nil, err
		}
		set.Add(utxo, true)
		b = b[n:]
	}
	return set, nil
}

// Loading a key nothing was ever Saved under returns an empty set, not
// an error — an empty cache is a normal starting state.
func TestLoadMissingKeyReturnsEmptySet(t *testing.T) {
	require := require.New(t)

	store := newMemStore()
	opts := NewPersistanceOptions("utxos", false, avax.Union)

	set, err := Load(store, opts, decodeSet)
	require.NoError(err)
	require.Empty(set.GetAllUTXOs())
}

// Save then Load round-trips a set's contents through the store.
func TestSaveLoadRoundTrip(t *testing.T) {
	require := require.New(t)

	store := newMemStore()
	opts := NewPersistanceOptions("utxos", false, avax.Union)

	addr := ids.Address{1}
	fresh := avax.NewUTXOSet()
	fresh.Add(testUTXO(ids.ID{1}, ids.ID{9}, 1_000, addr), true)

	require.NoError(Save(store, opts, fresh, decodeSet, encodeSet))

	loaded, err := Load(store, opts, decodeSet)
	require.NoError(err)
	require.Len(loaded.GetAllUTXOs(), 1)
	require.Equal(uint64(1_000), loaded.GetAllUTXOs()[0].Out.Amount())
}

// With Overwrite unset, Save merges the fresh set into whatever's
// already cached per MergeRule instead of clobbering it.
func TestSaveMergesByRule(t *testing.T) {
	require := require.New(t)

	store := newMemStore()
	opts := NewPersistanceOptions("utxos", false, avax.Union)
	addr := ids.Address{1}

	first := avax.NewUTXOSet()
	first.Add(testUTXO(ids.ID{1}, ids.ID{9}, 1_000, addr), true)
	require.NoError(Save(store, opts, first, decodeSet, encodeSet))

	second := avax.NewUTXOSet()
	second.Add(testUTXO(ids.ID{2}, ids.ID{9}, 500, addr), true)
	require.NoError(Save(store, opts, second, decodeSet, encodeSet))

	loaded, err := Load(store, opts, decodeSet)
	require.NoError(err)
	require.Len(loaded.GetAllUTXOs(), 2)
}

// With Overwrite set, Save replaces whatever was cached rather than
// merging into it.
func TestSaveOverwriteReplacesExisting(t *testing.T) {
	require := require.New(t)

	store := newMemStore()
	addr := ids.Address{1}

	first := avax.NewUTXOSet()
	first.Add(testUTXO(ids.ID{1}, ids.ID{9}, 1_000, addr), true)
	require.NoError(Save(store, NewPersistanceOptions("utxos", false, avax.Union), first, decodeSet, encodeSet))

	second := avax.NewUTXOSet()
	second.Add(testUTXO(ids.ID{2}, ids.ID{9}, 500, addr), true)
	require.NoError(Save(store, NewPersistanceOptions("utxos", true, avax.Union), second, decodeSet, encodeSet))

	loaded, err := Load(store, NewPersistanceOptions("utxos", false, avax.Union), decodeSet)
	require.NoError(err)
	require.Len(loaded.GetAllUTXOs(), 1)
	require.Equal(uint64(500), loaded.GetAllUTXOs()[0].Out.Amount())
}
