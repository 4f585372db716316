// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package p is the P-chain wallet façade: it pairs a builder.Builder with
// a UTXO-tracking Backend and the shared vms/platformvm/txs.Sign path to
// produce signed, ready-to-submit transactions (spec.md §7, §9 "two
// chain-flavored façades"). Grounded on wallet/chain/p/backend.go's
// ChainUTXOs-backed Backend, trimmed to the UTXOSet primitive this
// module already builds.
package p

import (
	"context"
	"sync"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/wallet/chain/p/builder"
)

var _ builder.Backend = (*Backend)(nil)

// Backend is an in-memory, per-chain UTXO store: one avax.UTXOSet per
// source chain ID, the shape builder.Backend.UTXOs needs and
// AddUTXO/RemoveUTXO keep current as transactions are issued.
type Backend struct {
	mu   sync.RWMutex
	sets map[ids.ID]*avax.UTXOSet
}

// NewBackend returns an empty Backend. Populate it with AddUTXO before
// building transactions that spend from a given chain.
func NewBackend() *Backend {
	return &Backend{sets: make(map[ids.ID]*avax.UTXOSet)}
}

// UTXOs implements builder.Backend: chainID's UTXO set, or an empty one
// if nothing has been recorded for it yet.
func (b *Backend) UTXOs(_ context.Context, chainID ids.ID) (*avax.UTXOSet, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if s, ok := b.sets[chainID]; ok {
		return s, nil
	}
	return avax.NewUTXOSet(), nil
}

// AddUTXO records utxo as spendable on chainID.
func (b *Backend) AddUTXO(chainID ids.ID, utxo *avax.UTXO) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sets[chainID]
	if !ok {
		s = avax.NewUTXOSet()
		b.sets[chainID] = s
	}
	s.Add(utxo, true)
}

// RemoveUTXO drops utxoID from chainID's set, typically once its
// consuming tx has been accepted.
func (b *Backend) RemoveUTXO(chainID ids.ID, utxoID ids.ID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.sets[chainID]; ok {
		s.Remove(utxoID)
	}
}
