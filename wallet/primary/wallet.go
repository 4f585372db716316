// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package primary

import (
	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/keychain"
	"github.com/chainkit/utxowallet/wallet/chain/p"
	pbuilder "github.com/chainkit/utxowallet/wallet/chain/p/builder"
	"github.com/chainkit/utxowallet/wallet/chain/x"
	xbuilder "github.com/chainkit/utxowallet/wallet/chain/x/builder"
)

// Wallet is the combined P-chain/X-chain façade: both chains' builders
// are backed by the same cross-chain UTXOs store, so a UTXO recorded
// there for a (source, destination) chain pair is visible to the
// destination chain's builder. Issuing a tx does not write its outputs
// into the store; they appear only once recorded there, e.g. by
// FetchState or UTXOs.AddUTXO (spec.md §9 "two
// chain-flavored façades sharing one address set"). Grounded on the
// teacher's wallet/supernet/primary/wallet.go's Wallet{Relay()/Asset()}
// split, renamed to this module's P/X chain terms.
type Wallet interface {
	P() *p.Wallet
	X() *x.Wallet
}

type wallet struct {
	p *p.Wallet
	x *x.Wallet
}

func (w *wallet) P() *p.Wallet { return w.p }
func (w *wallet) X() *x.Wallet { return w.x }

// NewWallet combines an already-built P-chain and X-chain wallet.
func NewWallet(pWallet *p.Wallet, xWallet *x.Wallet) Wallet {
	return &wallet{p: pWallet, x: xWallet}
}

// NewWalletWithState wires a shared cross-chain UTXOs store into a
// fresh P-chain wallet and X-chain wallet, one ChainUTXOs adapter
// pinned to each chain's own ID. pChainID is this module's
// config.PrimaryNetworkID in every deployment this module targets;
// xChainID is the network's real X-chain blockchain ID, carried in
// xCtx already.
func NewWalletWithState(
	addrs []ids.Address,
	pCtx *pbuilder.Context,
	xCtx *xbuilder.Context,
	pChainID ids.ID,
	utxos UTXOs,
	kc keychain.Keychain,
) Wallet {
	pUTXOs := NewChainUTXOs(pChainID, utxos)
	pBuilder := pbuilder.New(addrs, pCtx, pUTXOs)
	pWallet := p.NewWallet(pBuilder, pUTXOs, kc)

	xUTXOs := NewChainUTXOs(xCtx.BlockchainID, utxos)
	xBuilder := xbuilder.New(addrs, xCtx, xUTXOs)
	xWallet := x.NewWallet(xBuilder, xUTXOs, kc)

	return NewWallet(pWallet, xWallet)
}
