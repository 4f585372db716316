// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package common holds the pieces the X-chain and P-chain builders share:
// the functional Option pattern used to override per-call defaults
// (change address, memo, signing set), and the goose-egg sanity check
// both façades run before returning a built transaction (spec.md §6,
// §9 "goose-egg").
package common

import (
	"context"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

// Options collects the overridable knobs a NewXxxTx call accepts,
// populated left-to-right by the caller's Option list (later options
// win).
type Options struct {
	ctx             context.Context
	addrs           []ids.Address
	changeOwner     *secp256k1fx.OutputOwners
	memo            []byte
	minIssuanceTime uint64
}

// Option mutates an in-progress Options value.
type Option func(*Options)

// NewOptions folds opts left-to-right over a zero Options value.
func NewOptions(opts []Option) *Options {
	o := &Options{ctx: context.Background()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithContext overrides the context used for backend lookups.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.ctx = ctx }
}

// WithCustomAddresses restricts coin selection and signing to addrs
// instead of every address the keychain/builder knows about.
func WithCustomAddresses(addrs []ids.Address) Option {
	return func(o *Options) { o.addrs = addrs }
}

// WithChangeOwner overrides where unspent change is returned.
func WithChangeOwner(owner *secp256k1fx.OutputOwners) Option {
	return func(o *Options) { o.changeOwner = owner }
}

// WithMemo sets the tx's memo field.
func WithMemo(memo []byte) Option {
	return func(o *Options) { o.memo = memo }
}

// WithMinIssuanceTime overrides the timestamp used to evaluate output
// locktimes and, for staking txs, a validator's start time. An output
// is locked whenever this time does not strictly exceed its Locktime
// (spec.md §4.2 "locked when asOf ≤ locktime"), so callers must supply
// the real issuance time to spend anything — the zero default locks
// every UTXO, including ones with no locktime set.
func WithMinIssuanceTime(t uint64) Option {
	return func(o *Options) { o.minIssuanceTime = t }
}

func (o *Options) Context() context.Context { return o.ctx }

// Addresses returns the caller's restricted address set if one was
// supplied, else falls back to def (typically the full keychain set).
func (o *Options) Addresses(def []ids.Address) []ids.Address {
	if len(o.addrs) > 0 {
		return o.addrs
	}
	return def
}

// ChangeOwner returns the caller's override if one was supplied, else
// def (typically a 1-of-1 owned by the first signing address).
func (o *Options) ChangeOwner(def *secp256k1fx.OutputOwners) *secp256k1fx.OutputOwners {
	if o.changeOwner != nil {
		return o.changeOwner
	}
	return def
}

func (o *Options) Memo() []byte { return o.memo }

func (o *Options) MinIssuanceTime() uint64 { return o.minIssuanceTime }
