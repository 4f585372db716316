// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/keychain"
	"github.com/chainkit/utxowallet/utils/hashing"
	"github.com/chainkit/utxowallet/utils/wrappers"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/nftfx"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

var (
	ErrUnknownOwner  = errors.New("utxo referenced by input not found")
	ErrMissingSigner = errors.New("keychain has no signer for address")
)

// Tx pairs an UnsignedTx with one credential per signable input, in wire
// order: BaseTx.Ins, then (ImportTx) ImportedIns, then (OperationTx) one
// credential per operation (spec.md §4.8 "Signed Tx").
type Tx struct {
	Unsigned UnsignedTx
	Creds    []Credential

	unsignedBytes []byte
	bytes         []byte
}

// Credential is either fx's credential type, both sharing a
// MarshalCredential() shape.
type Credential interface {
	MarshalCredential() ([]byte, error)
}

// Ins exposes signableIns to callers outside this package (the X-chain
// façade's goose-egg check needs every spent input's AVAX amount).
func Ins(tx UnsignedTx) []*avax.TransferableInput {
	return signableIns(tx)
}

func signableIns(tx UnsignedTx) []*avax.TransferableInput {
	switch t := tx.(type) {
	case *BaseTx:
		return t.Ins
	case *CreateAssetTx:
		return t.Ins
	case *OperationTx:
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

// opInput returns the one signable secp256k1fx.Input embedded in o,
// whichever of the three op kinds this module supports it is.
func opInput(o op) *secp256k1fx.Input {
	switch t := o.(type) {
	case *secp256k1fx.MintOperation:
		return &t.MintInput
	case *nftfx.MintOperation:
		return &t.MintInput
	case *nftfx.TransferOperation:
		return &t.Input
	default:
		return nil
	}
}

// Sign builds a signed Tx over utx: the digest is sha256 of utx's
// canonical unsigned bytes, and each credential's signatures are
// assembled from the sig indices GetMinimumSpendable (or the builder,
// for operations) recorded against that UTXO's owner set (spec.md §4.8
// "Signing").
func Sign(utx UnsignedTx, utxoSet *avax.UTXOSet, kc keychain.Keychain) (*Tx, error) {
	unsignedBytes, err := Marshal(utx)
	if err != nil {
		return nil, err
	}
	digest := hashing.ComputeHash256(unsignedBytes)

	var creds []Credential

	for _, in := range signableIns(utx) {
		cred, err := signTransferInput(digest, in, utxoSet, kc)
		if err != nil {
			return nil, err
		}
		creds = append(creds, cred)
	}

	if opTx, ok := utx.(*OperationTx); ok {
		for _, operation := range opTx.Ops {
			cred, err := signOperation(digest, operation, utxoSet, kc)
			if err != nil {
				return nil, err
			}
			creds = append(creds, cred)
		}
	}

	return &Tx{Unsigned: utx, Creds: creds, unsignedBytes: unsignedBytes}, nil
}

func signTransferInput(digest []byte, in *avax.TransferableInput, utxoSet *avax.UTXOSet, kc keychain.Keychain) (*secp256k1fx.Credential, error) {
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
	sigs, err := signSigIndices(digest, transferIn.SigIndices, owners.Owners().Addrs, kc)
	if err != nil {
		return nil, err
	}
	return &secp256k1fx.Credential{Sigs: sigs}, nil
}

func signOperation(digest []byte, to *TransferableOperation, utxoSet *avax.UTXOSet, kc keychain.Keychain) (Credential, error) {
	in := opInput(to.Op)
	if in == nil || len(to.UTXOIDs) == 0 {
		return nil, ErrUnknownOwner
	}
	utxo, ok := utxoSet.GetUTXO(to.UTXOIDs[0].InputID())
	if !ok {
		return nil, ErrUnknownOwner
	}
	owners, ok := utxo.Out.(interface{ Owners() *secp256k1fx.OutputOwners })
	if !ok {
		return nil, ErrUnknownOwner
	}
	sigs, err := signSigIndices(digest, in.SigIndices, owners.Owners().Addrs, kc)
	if err != nil {
		return nil, err
	}
	switch to.Op.(type) {
	case *secp256k1fx.MintOperation:
		return &secp256k1fx.Credential{Sigs: sigs}, nil
	default:
		return &nftfx.Credential{Sigs: sigs}, nil
	}
}

func signSigIndices(digest []byte, sigIndices []uint32, ownerAddrs []ids.Address, kc keychain.Keychain) ([][secp256k1fx.SignatureLen]byte, error) {
	sigs := make([][secp256k1fx.SignatureLen]byte, len(sigIndices))
	for j, idx := range sigIndices {
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
	return sigs, nil
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
// credentials, each typeID-prefixed.
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

func (tx *Tx) ID() [32]byte {
	b, err := tx.Bytes()
	if err != nil {
		return [32]byte{}
	}
	return hashing.ComputeHash256Array(b)
}
