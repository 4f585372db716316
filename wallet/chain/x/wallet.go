// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package x

import (
	"context"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/keychain"
	"github.com/chainkit/utxowallet/vms/avm/txs"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
	"github.com/chainkit/utxowallet/wallet/chain/x/builder"
	"github.com/chainkit/utxowallet/wallet/common"
)

// Wallet is the X-chain build-sign façade: each IssueXxxTx builds the
// unsigned tx, syntactically verifies it, runs the goose-egg sanity
// check, and signs it against the backend's current UTXO set, in one
// call (spec.md §9 "two chain-flavored façades").
type Wallet struct {
	Builder *builder.Builder
	backend builder.Backend
	kc      keychain.Keychain
}

// NewWallet pairs b with any builder.Backend — this module's own
// in-memory Backend, or an external UTXO store such as
// wallet/primary.ChainUTXOs — so a single UTXO store can back several
// chains' wallets at once.
func NewWallet(b *builder.Builder, backend builder.Backend, kc keychain.Keychain) *Wallet {
	return &Wallet{Builder: b, backend: backend, kc: kc}
}

// finish syntactically verifies utx, rejects it if its fee trips the
// goose-egg check, and signs it.
func (w *Wallet) finish(utx txs.UnsignedTx) (*txs.Tx, error) {
	if err := utx.SyntacticVerify(w.Builder.Context().NetworkID); err != nil {
		return nil, err
	}

	utxoSet, err := w.backend.UTXOs(context.Background(), w.Builder.Context().BlockchainID)
	if err != nil {
		return nil, err
	}
	// ImportTx's ImportedIns reference UTXOs recorded under SourceChain,
	// a different chain ID than the local set just fetched — Sign needs
	// both sets merged, or it reports ErrUnknownOwner on every imported
	// input (spec.md §4.7 "ImportTx").
	if imp, ok := utx.(*txs.ImportTx); ok {
		sourceUTXOs, err := w.backend.UTXOs(context.Background(), imp.SourceChain)
		if err != nil {
			return nil, err
		}
		utxoSet = utxoSet.MergeByRule(sourceUTXOs, avax.Union)
	}
	// Exported outputs are paid for by the inputs too, so they count as
	// outputs rather than as fee.
	outs := utx.Outputs()
	if exp, ok := utx.(*txs.ExportTx); ok {
		outs = append(append([]*avax.TransferableOutput{}, outs...), exp.ExportedOuts...)
	}
	fee, outputTotal, err := common.AVAXFlow(txs.Ins(utx), outs, w.Builder.Context().AVAXAssetID)
	if err != nil {
		return nil, err
	}
	if err := common.VerifyGooseEgg(fee, outputTotal); err != nil {
		return nil, err
	}

	return txs.Sign(utx, utxoSet, w.kc)
}

func (w *Wallet) IssueBaseTx(outputs []*avax.TransferableOutput, options ...common.Option) (*txs.Tx, error) {
	utx, err := w.Builder.NewBaseTx(outputs, options...)
	if err != nil {
		return nil, err
	}
	return w.finish(utx)
}

func (w *Wallet) IssueCreateAssetTx(
	name, symbol string,
	denomination byte,
	states []*txs.InitialState,
	options ...common.Option,
) (*txs.Tx, error) {
	utx, err := w.Builder.NewCreateAssetTx(name, symbol, denomination, states, options...)
	if err != nil {
		return nil, err
	}
	return w.finish(utx)
}

func (w *Wallet) IssueOperationTx(ops []*txs.TransferableOperation, options ...common.Option) (*txs.Tx, error) {
	utx, err := w.Builder.NewOperationTx(ops, options...)
	if err != nil {
		return nil, err
	}
	return w.finish(utx)
}

func (w *Wallet) IssueImportTx(
	sourceChainID ids.ID,
	to *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.Tx, error) {
	utx, err := w.Builder.NewImportTx(sourceChainID, to, options...)
	if err != nil {
		return nil, err
	}
	return w.finish(utx)
}

func (w *Wallet) IssueExportTx(
	chainID ids.ID,
	outputs []*avax.TransferableOutput,
	options ...common.Option,
) (*txs.Tx, error) {
	utx, err := w.Builder.NewExportTx(chainID, outputs, options...)
	if err != nil {
		return nil, err
	}
	return w.finish(utx)
}
