// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package persist is the optional local UTXO cache spec.md §6
// "Persistence" names: callers supply a KVStore honoring get/set/has,
// plus PersistanceOptions describing how a freshly fetched UTXOSet
// should be merged into whatever's already cached under a given key.
// No concrete KVStore is shipped — the teacher's own wallet tree never
// carries one either (persistence is the caller's concern, not the
// client library's), so this package is the capability interface plus
// the merge-write helper built on it.
package persist

import (
	"errors"

	"github.com/chainkit/utxowallet/vms/components/avax"
)

var ErrNotFound = errors.New("key not found in store")

// KVStore is the minimal capability a caller-supplied cache must offer
// (spec.md §6 "callers supply a store honoring get/set/has").
type KVStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Has(key string) (bool, error)
}

// PersistanceOptions names the cache entry and how a freshly retrieved
// UTXOSet should combine with whatever's already stored under it
// (spec.md §6 "PersistanceOptions{name, overwrite, mergeRule}").
type PersistanceOptions struct {
	Name      string
	Overwrite bool
	MergeRule avax.MergeRule
}

func NewPersistanceOptions(name string, overwrite bool, mergeRule avax.MergeRule) *PersistanceOptions {
	return &PersistanceOptions{Name: name, Overwrite: overwrite, MergeRule: mergeRule}
}

// Load decodes the UTXOSet cached under opts.Name, or an empty one if
// nothing is cached yet (ErrNotFound from store.Get is not an error
// here, since an empty cache is a normal starting state).
func Load(store KVStore, opts *PersistanceOptions, decode func([]byte) (*avax.UTXOSet, error)) (*avax.UTXOSet, error) {
	ok, err := store.Has(opts.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return avax.NewUTXOSet(), nil
	}
	raw, err := store.Get(opts.Name)
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

// Save merges fresh into whatever's cached under opts.Name per
// opts.MergeRule (or simply overwrites it, if opts.Overwrite), then
// writes the result back through store.
func Save(store KVStore, opts *PersistanceOptions, fresh *avax.UTXOSet, decode func([]byte) (*avax.UTXOSet, error), encode func(*avax.UTXOSet) ([]byte, error)) error {
	result := fresh
	if !opts.Overwrite {
		existing, err := Load(store, opts, decode)
		if err != nil {
			return err
		}
		result = existing.MergeByRule(fresh, opts.MergeRule)
	}
	encoded, err := encode(result)
	if err != nil {
		return err
	}
	return store.Set(opts.Name, encoded)
}
