// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputVerify(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		wantErr error
	}{
		{name: "empty", indices: nil, wantErr: nil},
		{name: "single index", indices: []uint32{0}, wantErr: nil},
		{name: "strictly ascending", indices: []uint32{0, 2, 5}, wantErr: nil},
		{name: "duplicate", indices: []uint32{1, 1}, wantErr: ErrInputIndicesNotSortedUnique},
		{name: "descending", indices: []uint32{2, 1}, wantErr: ErrInputIndicesNotSortedUnique},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{SigIndices: tt.indices}
			err := in.Verify()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// NewInput sorts whatever order its caller supplies, and never mutates
// the caller's backing slice.
func TestNewInputSortsWithoutMutatingInput(t *testing.T) {
	given := []uint32{5, 1, 3}
	in := NewInput(given)

	require.Equal(t, []uint32{1, 3, 5}, in.SigIndices)
	require.Equal(t, []uint32{5, 1, 3}, given)
	require.NoError(t, in.Verify())
}
