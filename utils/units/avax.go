// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package units

// Denominations of value, per spec.md §6 "ONEAVAX".
const (
	NanoAvax  uint64 = 1
	MicroAvax uint64 = 1000 * NanoAvax
	Schmeckle uint64 = 49*MicroAvax + 463*NanoAvax
	MilliAvax uint64 = 1000 * MicroAvax
	Avax      uint64 = 1000 * MilliAvax
	KiloAvax  uint64 = 1000 * Avax
	MegaAvax  uint64 = 1000 * KiloAvax

	// OneAVAX is the canonical "1 AVAX" value in the smallest wire unit,
	// used by the goose-egg sanity check (spec.md §5).
	OneAVAX = Avax
)
