// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package signer is the X-chain signing step: a thin adapter handing
// an UnsignedTx and the UTXO set it was built against to
// vms/avm/txs.Sign, which already implements the full per-tx-kind
// signable-input and signable-operation walk (spec.md §4.8 "Signing &
// Credentials"). Mirrors wallet/chain/p/signer/visitor.go.
package signer

import (
	"github.com/chainkit/utxowallet/keychain"
	"github.com/chainkit/utxowallet/vms/avm/txs"
	"github.com/chainkit/utxowallet/vms/components/avax"
)

// Signer signs unsigned X-chain transactions against a UTXO set and a
// keychain of the signer's choosing.
type Signer struct {
	kc      keychain.Keychain
	utxoSet *avax.UTXOSet
}

func New(kc keychain.Keychain, utxoSet *avax.UTXOSet) *Signer {
	return &Signer{kc: kc, utxoSet: utxoSet}
}

// SignUnsigned produces a signed Tx over utx.
func (s *Signer) SignUnsigned(utx txs.UnsignedTx) (*txs.Tx, error) {
	return txs.Sign(utx, s.utxoSet, s.kc)
}
