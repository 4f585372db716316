// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package builder assembles unsigned AVM (X-chain) transactions: it
// resolves how much of each asset must be burned (fees plus any
// explicit output amounts), runs coin selection via
// avax.GetMinimumSpendable, and wires the result into one of the five
// X-chain tx kinds this module supports (spec.md §4.7, §7 "Transaction
// Builders"). Grounded on wallet/chain/p/builder/builder.go's
// toBurn/spend pattern, reused here verbatim since both chains share
// the same avax.AAD coin selector.
package builder

import (
	"context"
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/safemath"
	"github.com/chainkit/utxowallet/utils/set"
	"github.com/chainkit/utxowallet/vms/avm/txs"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
	"github.com/chainkit/utxowallet/wallet/common"
)

var ErrNoChangeAddress = errors.New("no possible change address")

// Backend supplies the UTXO set a builder spends from.
type Backend interface {
	UTXOs(ctx context.Context, sourceChainID ids.ID) (*avax.UTXOSet, error)
}

// Builder assembles unsigned X-chain transactions on behalf of the
// addresses it was constructed with.
type Builder struct {
	addrs   []ids.Address
	context *Context
	backend Backend
}

// New returns a transaction builder that spends UTXOs owned by addrs.
func New(addrs []ids.Address, context *Context, backend Backend) *Builder {
	return &Builder{addrs: addrs, context: context, backend: backend}
}

func (b *Builder) Context() *Context { return b.context }

// NewBaseTx builds a simple value transfer: outputs plus the tx fee are
// burned from addrs' UTXOs, with any excess returned as change.
func (b *Builder) NewBaseTx(outputs []*avax.TransferableOutput, options ...common.Option) (*txs.BaseTx, error) {
	ops := common.NewOptions(options)
	toBurn := map[ids.ID]uint64{b.context.AVAXAssetID: b.context.BaseTxFee}
	if err := addOutputAmounts(toBurn, outputs); err != nil {
		return nil, err
	}

	inputs, change, err := b.spend(toBurn, ops)
	if err != nil {
		return nil, err
	}
	outs := append(append([]*avax.TransferableOutput{}, outputs...), change...)
	if err := avax.SortTransferableOutputs(outs); err != nil {
		return nil, err
	}

	return &txs.BaseTx{
		NetworkID:    b.context.NetworkID,
		BlockchainID: b.context.BlockchainID,
		Ins:          inputs,
		Outs:         outs,
		Memo:         ops.Memo(),
	}, nil
}

// NewCreateAssetTx defines a new asset named name (ticker symbol,
// decimal denomination) with its initial outputs states, burning the
// CreateAssetTxFee from addrs' UTXOs (spec.md §4.7 "CreateAssetTx").
func (b *Builder) NewCreateAssetTx(
	name, symbol string,
	denomination byte,
	states []*txs.InitialState,
	options ...common.Option,
) (*txs.CreateAssetTx, error) {
	ops := common.NewOptions(options)
	toBurn := map[ids.ID]uint64{b.context.AVAXAssetID: b.context.CreateAssetTxFee}
	inputs, outs, err := b.spend(toBurn, ops)
	if err != nil {
		return nil, err
	}

	return &txs.CreateAssetTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: b.context.BlockchainID,
			Ins:          inputs,
			Outs:         outs,
			Memo:         ops.Memo(),
		},
		Name:         name,
		Symbol:       symbol,
		Denomination: denomination,
		States:       states,
	}, nil
}

// NewOperationTx attaches ops (already built against UTXOs the caller
// resolved, e.g. via nftfx mint/transfer operations) to a BaseTx body
// burning only the ordinary tx fee — spec.md §4.7 "OperationTx" treats
// the operations' own UTXO consumption as independent of AVAX coin
// selection, so only the fee is spent here.
func (b *Builder) NewOperationTx(ops_ []*txs.TransferableOperation, options ...common.Option) (*txs.OperationTx, error) {
	ops := common.NewOptions(options)
	toBurn := map[ids.ID]uint64{b.context.AVAXAssetID: b.context.BaseTxFee}
	inputs, outs, err := b.spend(toBurn, ops)
	if err != nil {
		return nil, err
	}

	sorted := append([]*txs.TransferableOperation{}, ops_...)
	txs.SortOperations(sorted)

	return &txs.OperationTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: b.context.BlockchainID,
			Ins:          inputs,
			Outs:         outs,
			Memo:         ops.Memo(),
		},
		Ops: sorted,
	}, nil
}

// NewImportTx consumes every UTXO addrs can spend on sourceChainID and
// delivers the funds to the owner set `to` on the X-chain, paying the
// tx fee from the imported funds when they cover it, else topping up
// from local UTXOs (spec.md §4.7 "ImportTx").
func (b *Builder) NewImportTx(
	sourceChainID ids.ID,
	to *secp256k1fx.OutputOwners,
	options ...common.Option,
) (*txs.ImportTx, error) {
	ops := common.NewOptions(options)
	utxoSet, err := b.backend.UTXOs(ops.Context(), sourceChainID)
	if err != nil {
		return nil, err
	}

	addrs := ops.Addresses(b.addrs)
	minIssuanceTime := ops.MinIssuanceTime()

	importedInputs := make([]*avax.TransferableInput, 0)
	importedAmounts := make(map[ids.ID]uint64)
	have := set.Of(addrs...)
	for _, utxo := range utxoSet.GetAllUTXOs() {
		out, ok := utxo.Out.(*secp256k1fx.TransferOutput)
		if !ok {
			continue
		}
		if out.Locked(minIssuanceTime) || !out.MeetsThreshold(have) {
			continue
		}
		spenders := out.GetSpenders(have)
		sigIndices := sigIndicesOf(out.Addrs, spenders)

		importedInputs = append(importedInputs, &avax.TransferableInput{
			UTXOID: utxo.UTXOID,
			Asset:  utxo.Asset,
			In: &secp256k1fx.TransferInput{
				Amt:   out.Amt,
				Input: secp256k1fx.Input{SigIndices: sigIndices},
			},
		})
		amt, err := safemath.Add64(importedAmounts[utxo.AssetID()], out.Amt)
		if err != nil {
			return nil, err
		}
		importedAmounts[utxo.AssetID()] = amt
	}
	if len(importedInputs) == 0 {
		return nil, avax.ErrInsufficientFunds
	}
	avax.SortTransferableInputs(importedInputs)

	var inputs []*avax.TransferableInput
	outputs := make([]*avax.TransferableOutput, 0, len(importedAmounts))
	avaxAssetID := b.context.AVAXAssetID
	txFee := b.context.BaseTxFee
	importedAVAX := importedAmounts[avaxAssetID]
	if importedAVAX >= txFee {
		importedAmounts[avaxAssetID] -= txFee
	} else {
		toBurn := map[ids.ID]uint64{avaxAssetID: txFee - importedAVAX}
		var err error
		inputs, outputs, err = b.spend(toBurn, ops)
		if err != nil {
			return nil, err
		}
		delete(importedAmounts, avaxAssetID)
	}
	for assetID, amount := range importedAmounts {
		if amount == 0 {
			continue
		}
		outputs = append(outputs, &avax.TransferableOutput{
			Asset: avax.Asset{ID: assetID},
			Out:   &secp256k1fx.TransferOutput{Amt: amount, OutputOwners: *to},
		})
	}
	if err := avax.SortTransferableOutputs(outputs); err != nil {
		return nil, err
	}

	return &txs.ImportTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: b.context.BlockchainID,
			Ins:          inputs,
			Outs:         outputs,
			Memo:         ops.Memo(),
		},
		SourceChain: sourceChainID,
		ImportedIns: importedInputs,
	}, nil
}

// NewExportTx sends outputs to chainID for that chain to import,
// burning the tx fee (plus each exported asset's amount) from addrs'
// local UTXOs (spec.md §4.7 "ExportTx").
func (b *Builder) NewExportTx(
	chainID ids.ID,
	outputs []*avax.TransferableOutput,
	options ...common.Option,
) (*txs.ExportTx, error) {
	ops := common.NewOptions(options)
	toBurn := map[ids.ID]uint64{b.context.AVAXAssetID: b.context.BaseTxFee}
	if err := addOutputAmounts(toBurn, outputs); err != nil {
		return nil, err
	}

	inputs, change, err := b.spend(toBurn, ops)
	if err != nil {
		return nil, err
	}
	if err := avax.SortTransferableOutputs(outputs); err != nil {
		return nil, err
	}

	return &txs.ExportTx{
		BaseTx: txs.BaseTx{
			NetworkID:    b.context.NetworkID,
			BlockchainID: b.context.BlockchainID,
			Ins:          inputs,
			Outs:         change,
			Memo:         ops.Memo(),
		},
		DestinationChain: chainID,
		ExportedOuts:     outputs,
	}, nil
}

func addOutputAmounts(toBurn map[ids.ID]uint64, outputs []*avax.TransferableOutput) error {
	for _, out := range outputs {
		amt, err := safemath.Add64(toBurn[out.AssetID()], out.Out.Amount())
		if err != nil {
			return err
		}
		toBurn[out.AssetID()] = amt
	}
	return nil
}

func sigIndicesOf(owners []ids.Address, spenders []ids.Address) []uint32 {
	spenderSet := make(map[ids.Address]struct{}, len(spenders))
	for _, s := range spenders {
		spenderSet[s] = struct{}{}
	}
	indices := make([]uint32, 0, len(spenders))
	for i, addr := range owners {
		if _, ok := spenderSet[addr]; ok {
			indices = append(indices, uint32(i))
		}
	}
	return indices
}

// spend runs coin selection for amountsToBurn, none of which is
// returned to the sender, yielding the selected inputs and whatever
// change is left over.
func (b *Builder) spend(
	amountsToBurn map[ids.ID]uint64,
	ops *common.Options,
) ([]*avax.TransferableInput, []*avax.TransferableOutput, error) {
	utxoSet, err := b.backend.UTXOs(ops.Context(), b.context.BlockchainID)
	if err != nil {
		return nil, nil, err
	}

	addrs := ops.Addresses(b.addrs)
	changeOwner, err := b.defaultChangeOwner(ops)
	if err != nil {
		return nil, nil, err
	}

	aad := avax.NewAssetAmountDestination(addrs, changeOwner.Addrs, changeOwner.Addrs)
	for assetID, amount := range amountsToBurn {
		aad.AddAssetAmount(assetID, 0, amount)
	}
	if err := avax.GetMinimumSpendable(aad, utxoSet, ops.MinIssuanceTime(), 0, 1); err != nil {
		return nil, nil, err
	}
	return aad.Inputs, aad.Outputs, nil
}

func (b *Builder) defaultChangeOwner(ops *common.Options) (*secp256k1fx.OutputOwners, error) {
	addrs := ops.Addresses(b.addrs)
	if len(addrs) == 0 {
		return nil, ErrNoChangeAddress
	}
	return ops.ChangeOwner(&secp256k1fx.OutputOwners{Threshold: 1, Addrs: []ids.Address{addrs[0]}}), nil
}
