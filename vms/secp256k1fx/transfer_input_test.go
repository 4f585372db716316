// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransferInputVerify(t *testing.T) {
	tests := []struct {
		name    string
		in      *TransferInput
		wantErr error
	}{
		{
			name:    "zero amount",
			in:      &TransferInput{Amt: 0, Input: Input{SigIndices: []uint32{0}}},
			wantErr: ErrOutputUnspendable,
		},
		{
			name:    "unsorted sig indices",
			in:      &TransferInput{Amt: 5, Input: Input{SigIndices: []uint32{1, 0}}},
			wantErr: ErrInputIndicesNotSortedUnique,
		},
		{
			name:    "well formed",
			in:      &TransferInput{Amt: 5, Input: Input{SigIndices: []uint32{0, 1}}},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Verify()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTransferInputAmount(t *testing.T) {
	in := &TransferInput{Amt: 314}
	require.Equal(t, uint64(314), in.Amount())
}
