// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"errors"
	"fmt"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/safemath"
	"github.com/chainkit/utxowallet/utils/set"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoChangeAddress   = errors.New("no change address available")
)

// AssetAmount accumulates, for one asset, how much has been spent toward
// a transfer amount and how much toward a fee/burn, and the targets both
// must reach (spec.md §4.5 "AAD").
type AssetAmount struct {
	AssetID  ids.ID
	Amount   uint64 // target to pay to destinations
	Burn     uint64 // target to burn (fee)
	spent    uint64
	burned   uint64
	change   uint64
	typeID   uint32
	haveType bool
}

// SpendAmount applies amt against the outstanding Amount target first,
// then the outstanding Burn target, with anything left over recorded
// as change to return to the sender (spec.md §4.6 step 4). Burn is
// consumed, not returned: only the portion beyond both targets becomes
// change.
func (a *AssetAmount) SpendAmount(amt uint64) {
	toAmount := amt
	if remaining := a.Amount - a.spent; remaining < toAmount {
		toAmount = remaining
	}
	a.spent += toAmount
	amt -= toAmount

	toBurn := amt
	if remaining := a.Burn - a.burned; remaining < toBurn {
		toBurn = remaining
	}
	a.burned += toBurn
	amt -= toBurn

	a.change += amt
}

func (a *AssetAmount) AmountFulfilled() bool {
	return a.spent >= a.Amount
}

func (a *AssetAmount) BurnFulfilled() bool {
	return a.burned >= a.Burn
}

func (a *AssetAmount) Fulfilled() bool {
	return a.AmountFulfilled() && a.BurnFulfilled()
}

func (a *AssetAmount) RemainingAmount() uint64 {
	if a.spent >= a.Amount {
		return 0
	}
	return a.Amount - a.spent
}

func (a *AssetAmount) Change() uint64 {
	return a.change
}

// AssetAmountDestination is the coin-selection accumulator GetMinimumSpendable
// fills in: per-asset targets plus the three address roles spec.md §4.5
// names (senders/destinations/changeAddresses).
type AssetAmountDestination struct {
	Senders         []ids.Address
	Destinations    []ids.Address
	ChangeAddresses []ids.Address

	Amounts map[ids.ID]*AssetAmount

	Inputs  []*TransferableInput
	Outputs []*TransferableOutput
}

func NewAssetAmountDestination(senders, destinations, changeAddresses []ids.Address) *AssetAmountDestination {
	return &AssetAmountDestination{
		Senders:         senders,
		Destinations:    destinations,
		ChangeAddresses: changeAddresses,
		Amounts:         make(map[ids.ID]*AssetAmount),
	}
}

// AddAssetAmount registers (or replaces) the spend/burn target for
// assetID.
func (aad *AssetAmountDestination) AddAssetAmount(assetID ids.ID, amount, burn uint64) {
	aad.Amounts[assetID] = &AssetAmount{AssetID: assetID, Amount: amount, Burn: burn}
}

// CanComplete reports whether every registered asset has met both its
// amount and burn targets (spec.md §4.5 "canComplete()").
func (aad *AssetAmountDestination) CanComplete() bool {
	for _, a := range aad.Amounts {
		if !a.Fulfilled() {
			return false
		}
	}
	return true
}

type ownedAmountOutput interface {
	TransferableOut
	Owners() *secp256k1fx.OutputOwners
}

// amountBearing reports whether out is a wire type GetMinimumSpendable
// may draw funds from. MintOutput/nftfx outputs satisfy ownedAmountOutput
// structurally (to live in a UTXOSet) but aren't spendable-for-amount:
// only a secp256k1fx.TransferOutput is (spec.md §4.6 "asset present but
// no amount-bearing variant ⇒ skip silently").
func amountBearing(out TransferableOut) (ownedAmountOutput, bool) {
	to, ok := out.(*secp256k1fx.TransferOutput)
	return to, ok
}

// GetMinimumSpendable walks utxoSet in iteration order, spending toward
// aad's per-asset targets, and appends the resulting inputs/outputs to
// aad (spec.md §4.6's getMinimumSpendable contract).
func GetMinimumSpendable(
	aad *AssetAmountDestination,
	utxoSet *UTXOSet,
	asOf uint64,
	locktime uint64,
	threshold uint32,
) error {
	have := set.Of(aad.Senders...)

	for _, utxo := range utxoSet.GetAllUTXOs() {
		if aad.CanComplete() {
			break
		}
		assetAmount, tracked := aad.Amounts[utxo.AssetID()]
		if !tracked || assetAmount.Fulfilled() {
			continue
		}

		uout, ok := amountBearing(utxo.Out)
		if !ok {
			// Asset present but no amount-bearing variant: skip silently
			// (spec.md §4.6 edge case).
			continue
		}
		owners := uout.Owners()
		if owners.Locked(asOf) {
			continue
		}
		if !owners.MeetsThreshold(have) {
			continue
		}

		spenders := owners.GetSpenders(have)
		sigIndices := make([]uint32, 0, len(spenders))
		spenderSet := make(map[ids.Address]struct{}, len(spenders))
		for _, s := range spenders {
			spenderSet[s] = struct{}{}
		}
		for i, addr := range owners.Addrs {
			if _, ok := spenderSet[addr]; ok {
				sigIndices = append(sigIndices, uint32(i))
			}
		}

		amount := uout.Amount()
		aad.Inputs = append(aad.Inputs, &TransferableInput{
			UTXOID: utxo.UTXOID,
			Asset:  utxo.Asset,
			In: &secp256k1fx.TransferInput{
				Amt:   amount,
				Input: secp256k1fx.Input{SigIndices: sigIndices},
			},
		})
		assetAmount.typeID = secp256k1fx.TransferOutputTypeID
		assetAmount.haveType = true
		assetAmount.SpendAmount(amount)
	}

	for assetID, a := range aad.Amounts {
		if !a.Fulfilled() {
			needed, err := safemath.Sub64(a.Amount+a.Burn, a.spent+a.burned)
			if err != nil {
				needed = 0
			}
			return wrapInsufficientFunds(assetID, needed)
		}
	}

	// By this point every asset is Fulfilled(), so RemainingAmount() is
	// always 0; only Change() can be nonzero.
	for assetID, a := range aad.Amounts {
		if !a.haveType {
			continue
		}
		if change := a.Change(); change > 0 {
			aad.Outputs = append(aad.Outputs, &TransferableOutput{
				Asset: Asset{ID: assetID},
				Out: &secp256k1fx.TransferOutput{
					Amt: change,
					OutputOwners: *secp256k1fx.NewOutputOwners(
						aad.ChangeAddresses, 0, 1,
					),
				},
			})
		}
	}

	SortTransferableInputs(aad.Inputs)
	return SortTransferableOutputs(aad.Outputs)
}

func wrapInsufficientFunds(assetID ids.ID, needed uint64) error {
	return &insufficientFundsError{assetID: assetID, needed: needed}
}

type insufficientFundsError struct {
	assetID ids.ID
	needed  uint64
}

func (e *insufficientFundsError) Error() string {
	return fmt.Sprintf("%s: need %d more of asset %s", ErrInsufficientFunds, e.needed, e.assetID)
}

func (e *insufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
