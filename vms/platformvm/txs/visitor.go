// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

// Visitor dispatches on a tx's concrete type, used by the signer to pick
// which inputs need a signature (spec.md §4.8 "Signer visitor pattern").
type Visitor interface {
	BaseTx(*BaseTx) error
	AddValidatorTx(*AddValidatorTx) error
	AddDelegatorTx(*AddDelegatorTx) error
	AddSubnetValidatorTx(*AddSubnetValidatorTx) error
	ImportTx(*ImportTx) error
	ExportTx(*ExportTx) error
}
