// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package primary combines the two chain-flavored façades
// (wallet/chain/p, wallet/chain/x) behind one cross-chain UTXO store,
// so a caller can build and sign transactions against either chain
// without juggling two independent UTXO caches (spec.md §9 "two
// chain-flavored façades sharing one address set"). Grounded on the
// teacher's wallet/supernet/primary/utxos.go, which keys UTXOs by
// (sourceChainID, destinationChainID) so shared-memory imports/exports
// between chains land in the same store as each chain's own UTXOs.
package primary

import (
	"context"
	"sync"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/vms/components/avax"
	pbuilder "github.com/chainkit/utxowallet/wallet/chain/p/builder"
	xbuilder "github.com/chainkit/utxowallet/wallet/chain/x/builder"
)

// UTXOs is a cross-chain UTXO store: every UTXO is recorded under the
// chain it was sent from and the chain it's spendable on, so a single
// store can back every chain's Backend at once.
type UTXOs interface {
	AddUTXO(ctx context.Context, sourceChainID, destinationChainID ids.ID, utxo *avax.UTXO) error
	RemoveUTXO(ctx context.Context, sourceChainID, destinationChainID, utxoID ids.ID) error
	UTXOs(ctx context.Context, sourceChainID, destinationChainID ids.ID) (*avax.UTXOSet, error)
}

type utxos struct {
	mu                sync.RWMutex
	sourceToDestToSet map[ids.ID]map[ids.ID]*avax.UTXOSet
}

// NewUTXOs returns an empty cross-chain UTXO store.
func NewUTXOs() UTXOs {
	return &utxos{sourceToDestToSet: make(map[ids.ID]map[ids.ID]*avax.UTXOSet)}
}

func (u *utxos) setFor(sourceChainID, destinationChainID ids.ID, create bool) *avax.UTXOSet {
	destToSet, ok := u.sourceToDestToSet[sourceChainID]
	if !ok {
		if !create {
			return nil
		}
		destToSet = make(map[ids.ID]*avax.UTXOSet)
		u.sourceToDestToSet[sourceChainID] = destToSet
	}
	set, ok := destToSet[destinationChainID]
	if !ok {
		if !create {
			return nil
		}
		set = avax.NewUTXOSet()
		destToSet[destinationChainID] = set
	}
	return set
}

func (u *utxos) AddUTXO(_ context.Context, sourceChainID, destinationChainID ids.ID, utxo *avax.UTXO) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.setFor(sourceChainID, destinationChainID, true).Add(utxo, true)
	return nil
}

func (u *utxos) RemoveUTXO(_ context.Context, sourceChainID, destinationChainID, utxoID ids.ID) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if set := u.setFor(sourceChainID, destinationChainID, false); set != nil {
		set.Remove(utxoID)
	}
	return nil
}

func (u *utxos) UTXOs(_ context.Context, sourceChainID, destinationChainID ids.ID) (*avax.UTXOSet, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if set := u.setFor(sourceChainID, destinationChainID, false); set != nil {
		return set, nil
	}
	return avax.NewUTXOSet(), nil
}

var (
	_ pbuilder.Backend = (*ChainUTXOs)(nil)
	_ xbuilder.Backend = (*ChainUTXOs)(nil)
)

// ChainUTXOs narrows a cross-chain UTXOs store to one fixed destination
// chain, the exact two-argument UTXOs(ctx, sourceChainID) shape both
// wallet/chain/p/builder.Backend and wallet/chain/x/builder.Backend
// require — so one ChainUTXOs value can back both chains' builders
// simultaneously, each pinned to its own chain ID.
type ChainUTXOs struct {
	chainID ids.ID
	utxos   UTXOs
}

// NewChainUTXOs pins utxos to chainID as the destination side of every
// lookup and write.
func NewChainUTXOs(chainID ids.ID, utxos UTXOs) *ChainUTXOs {
	return &ChainUTXOs{chainID: chainID, utxos: utxos}
}

// AddUTXO records utxo as received from sourceChainID onto this chain.
func (c *ChainUTXOs) AddUTXO(ctx context.Context, sourceChainID ids.ID, utxo *avax.UTXO) error {
	return c.utxos.AddUTXO(ctx, sourceChainID, c.chainID, utxo)
}

// RemoveUTXO drops utxoID, typically once its consuming tx is accepted.
func (c *ChainUTXOs) RemoveUTXO(ctx context.Context, sourceChainID, utxoID ids.ID) error {
	return c.utxos.RemoveUTXO(ctx, sourceChainID, c.chainID, utxoID)
}

// UTXOs implements builder.Backend for both chain façades.
func (c *ChainUTXOs) UTXOs(ctx context.Context, sourceChainID ids.ID) (*avax.UTXOSet, error) {
	return c.utxos.UTXOs(ctx, sourceChainID, c.chainID)
}
