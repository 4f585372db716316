// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/keychain"
	"github.com/chainkit/utxowallet/utils/hashing"
	"github.com/chainkit/utxowallet/utils/wrappers"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

var (
	ErrUnknownOwner  = errors.New("utxo referenced by input not found")
	ErrMissingSigner = errors.New("keychain has no signer for address")
)

// Tx pairs an UnsignedTx with one secp256k1fx.Credential per signable
// input, in input order (spec.md §4.8 "Signed Tx").
type Tx struct {
	Unsigned UnsignedTx
	Creds    []*secp256k1fx.Credential

	unsignedBytes []byte
	bytes         []byte
}

// Ins exposes signableIns to callers outside this package (the P-chain
// façade's goose-egg check needs every spent input to look up its
// AVAX-denominated amount).
func Ins(tx UnsignedTx) []*avax.TransferableInput {
	return signableIns(tx)
}

// signableIns collects every input a tx's credentials must cover, in
// wire order: BaseTx.Ins first, then any chain-specific additions
// (ImportTx.ImportedIns), mirroring the teacher's signer visitor but
// resolved directly against a UTXOSet instead of a backend abstraction.
func signableIns(tx UnsignedTx) []*avax.TransferableInput {
	switch t := tx.(type) {
	case *BaseTx:
		return t.Ins
	case *AddValidatorTx:
		return t.Ins
	case *AddDelegatorTx:
		return t.Ins
	case *AddSubnetValidatorTx:
		return t.Ins
	case *ExportTx:
		return t.Ins
	case *ImportTx:
		ins := make([]*avax.TransferableInput, 0, len(t.Ins)+len(t.ImportedIns))
		ins = append(ins, t.Ins...)
		ins = append(ins, t.ImportedIns...)
		return ins
	default:
		return nil
	}
}

// Sign builds a signed Tx over utx: the digest is sha256 of utx's
// canonical unsigned bytes, and each input's credential is assembled
// from the sig indices GetMinimumSpendable recorded against that UTXO's
// owner set (spec.md §4.8 "Signing").
func Sign(utx UnsignedTx, utxoSet *avax.UTXOSet, kc keychain.Keychain) (*Tx, error) {
	unsignedBytes, err := Marshal(utx)
	if err != nil {
		return nil, err
	}
	digest := hashing.ComputeHash256(unsignedBytes)

	ins := signableIns(utx)
	creds := make([]*secp256k1fx.Credential, len(ins))
	for i, in := range ins {
		utxo, ok := utxoSet.GetUTXO(in.InputID())
		if !ok {
			return nil, ErrUnknownOwner
		}
		owners, ok := utxo.Out.(interface{ Owners() *secp256k1fx.OutputOwners })
		if !ok {
			return nil, ErrUnknownOwner
		}
		transferIn, ok := in.In.(*secp256k1fx.TransferInput)
		if !ok {
			return nil, ErrUnknownOwner
		}

		sigs := make([][secp256k1fx.SignatureLen]byte, len(transferIn.SigIndices))
		ownerAddrs := owners.Owners().Addrs
		for j, idx := range transferIn.SigIndices {
			if int(idx) >= len(ownerAddrs) {
				return nil, ErrUnknownOwner
			}
			signer, ok := kc.Get(ownerAddrs[idx])
			if !ok {
				return nil, ErrMissingSigner
			}
			sig, err := signer.SignHash(digest)
			if err != nil {
				return nil, err
			}
			copy(sigs[j][:], sig)
		}
		creds[i] = &secp256k1fx.Credential{Sigs: sigs}
	}

	return &Tx{Unsigned: utx, Creds: creds, unsignedBytes: unsignedBytes}, nil
}

// UnsignedBytes returns the canonical unsigned tx bytes, computing and
// caching them if Sign didn't already.
func (tx *Tx) UnsignedBytes() ([]byte, error) {
	if tx.unsignedBytes == nil {
		b, err := Marshal(tx.Unsigned)
		if err != nil {
			return nil, err
		}
		tx.unsignedBytes = b
	}
	return tx.unsignedBytes, nil
}

// Bytes produces the canonical signed tx: unsignedBytes ‖ numCreds(4) ‖
// credentials, each typeID-prefixed (spec.md §4.8 "Serialization of Tx").
func (tx *Tx) Bytes() ([]byte, error) {
	if tx.bytes != nil {
		return tx.bytes, nil
	}
	unsignedBytes, err := tx.UnsignedBytes()
	if err != nil {
		return nil, err
	}
	p := wrappers.NewPacker(len(unsignedBytes) + 4)
	p.PackFixedBytes(unsignedBytes)
	p.PackCount(len(tx.Creds))
	for _, cred := range tx.Creds {
		credBytes, err := cred.MarshalCredential()
		if err != nil {
			return nil, err
		}
		p.PackFixedBytes(credBytes)
	}
	if p.Err != nil {
		return nil, p.Err
	}
	tx.bytes = p.Bytes
	return tx.bytes, nil
}

func (tx *Tx) ID() (txID [32]byte) {
	b, err := tx.Bytes()
	if err != nil {
		return txID
	}
	return hashing.ComputeHash256Array(b)
}
