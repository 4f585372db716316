// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/wrappers"
)

func TestMarshalCredentialRoundTrip(t *testing.T) {
	var sig [SignatureLen]byte
	sig[0] = 0xAB
	sig[SignatureLen-1] = 0xCD

	cred := &Credential{Sigs: [][SignatureLen]byte{sig}}
	raw, err := cred.MarshalCredential()
	require.NoError(t, err)

	p := wrappers.NewReader(raw)
	typeID := p.UnpackInt()
	require.Equal(t, CredentialTypeID, typeID)

	got, err := UnmarshalCredential(p)
	require.NoError(t, err)
	require.Equal(t, cred, got)
}

func TestMarshalCredentialEmptyHasNoSigs(t *testing.T) {
	cred := &Credential{}
	raw, err := cred.MarshalCredential()
	require.NoError(t, err)

	p := wrappers.NewReader(raw)
	_ = p.UnpackInt()
	got, err := UnmarshalCredential(p)
	require.NoError(t, err)
	require.Empty(t, got.Sigs)
}

func TestMarshalTransferInputRoundTrip(t *testing.T) {
	in := &TransferInput{Amt: 12345, Input: Input{SigIndices: []uint32{0, 3}}}
	raw, err := in.MarshalTransferInput()
	require.NoError(t, err)

	p := wrappers.NewReader(raw)
	typeID := p.UnpackInt()
	require.Equal(t, TransferInputTypeID, typeID)

	got, err := UnmarshalTransferInput(p)
	require.NoError(t, err)
	require.Equal(t, in.Amt, got.Amt)
	require.Equal(t, in.SigIndices, got.SigIndices)
}

// MarshalOutputOwners and UnmarshalOutputOwners share the
// locktime‖threshold‖numAddrs‖addrs wire form used by outputs that
// carry no surrounding typeID tag (a staking tx's rewardsOwner).
func TestMarshalOutputOwnersRoundTrip(t *testing.T) {
	owners := NewOutputOwners([]ids.Address{{4}, {2}}, 10, 1)

	p := wrappers.NewPacker(8 + 4 + 4 + 20*len(owners.Addrs))
	MarshalOutputOwners(p, owners)
	require.NoError(t, p.Err)

	reader := wrappers.NewReader(p.Bytes)
	got := UnmarshalOutputOwners(reader)
	require.NoError(t, reader.Err)
	require.Equal(t, *owners, got)
}

func TestUnmarshalTransferOutputRoundTrip(t *testing.T) {
	owners := NewOutputOwners([]ids.Address{{9}}, 5, 1)
	out := &TransferOutput{Amt: 99, OutputOwners: *owners}

	p := wrappers.NewPacker(8 + 8 + 4 + 4 + 20)
	p.PackLong(out.Amt)
	MarshalOutputOwners(p, &out.OutputOwners)
	require.NoError(t, p.Err)

	reader := wrappers.NewReader(p.Bytes)
	got, err := UnmarshalTransferOutput(reader)
	require.NoError(t, err)
	require.Equal(t, out, got)
}
