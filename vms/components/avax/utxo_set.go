// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import "github.com/chainkit/utxowallet/ids"

// MergeRule selects one of the six set-algebra operations UTXOSet.MergeByRule
// supports (spec.md §4.4 "mergeByRule").
type MergeRule int

const (
	Union MergeRule = iota
	Intersection
	DifferenceSelf
	SymDifference
	UnionMinusNew
	UnionMinusSelf
)

// UTXOSet is an indexed multi-map of UTXOs keyed by UTXO ID, with
// secondary indices by asset and by owning address (spec.md §4.4). The
// UTXO-ID map is authoritative; the secondary indices are updated on
// every mutation and never consulted to decide identity.
type UTXOSet struct {
	utxos      map[ids.ID]*UTXO
	byAsset    map[ids.ID]map[ids.ID]struct{}   // assetID -> set of utxoID
	byAddress  map[ids.Address]map[ids.ID]struct{} // address -> set of utxoID
	order      []ids.ID                          // insertion order, for deterministic iteration
}

func NewUTXOSet() *UTXOSet {
	return &UTXOSet{
		utxos:     make(map[ids.ID]*UTXO),
		byAsset:   make(map[ids.ID]map[ids.ID]struct{}),
		byAddress: make(map[ids.Address]map[ids.ID]struct{}),
	}
}

// owningAddresses extracts the address list a UTXO's output is locked
// to, if it exposes one (amount-bearing outputs all embed an
// OutputOwners-shaped Addrs field through their secp256k1fx/nftfx base).
func owningAddresses(out TransferableOut) []ids.Address {
	type addressed interface{ Addresses() []ids.Address }
	if a, ok := out.(addressed); ok {
		return a.Addresses()
	}
	return nil
}

// Add inserts utxo, keyed by its UTXO ID. If overwrite is false and an
// entry already exists for that ID, Add is a no-op (spec.md §4.4
// "add(utxo, overwrite?)").
func (s *UTXOSet) Add(utxo *UTXO, overwrite bool) {
	id := utxo.InputID()
	if _, exists := s.utxos[id]; exists && !overwrite {
		return
	}
	if _, exists := s.utxos[id]; !exists {
		s.order = append(s.order, id)
	}
	s.utxos[id] = utxo

	assetID := utxo.AssetID()
	if s.byAsset[assetID] == nil {
		s.byAsset[assetID] = make(map[ids.ID]struct{})
	}
	s.byAsset[assetID][id] = struct{}{}

	for _, addr := range owningAddresses(utxo.Out) {
		if s.byAddress[addr] == nil {
			s.byAddress[addr] = make(map[ids.ID]struct{})
		}
		s.byAddress[addr][id] = struct{}{}
	}
}

// AddArray bulk-inserts utxos, overwriting any existing entries.
func (s *UTXOSet) AddArray(utxos []*UTXO) {
	for _, utxo := range utxos {
		s.Add(utxo, true)
	}
}

// Remove deletes the UTXO identified by utxoID from every index.
func (s *UTXOSet) Remove(utxoID ids.ID) (*UTXO, bool) {
	utxo, ok := s.utxos[utxoID]
	if !ok {
		return nil, false
	}
	delete(s.utxos, utxoID)
	delete(s.byAsset[utxo.AssetID()], utxoID)
	for _, addr := range owningAddresses(utxo.Out) {
		delete(s.byAddress[addr], utxoID)
	}
	for i, id := range s.order {
		if id == utxoID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return utxo, true
}

// GetUTXO looks up a single UTXO by ID.
func (s *UTXOSet) GetUTXO(utxoID ids.ID) (*UTXO, bool) {
	utxo, ok := s.utxos[utxoID]
	return utxo, ok
}

// GetAllUTXOs returns every UTXO in insertion order.
func (s *UTXOSet) GetAllUTXOs() []*UTXO {
	out := make([]*UTXO, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.utxos[id])
	}
	return out
}

// GetUTXOIDs returns the IDs of UTXOs owned by any of addrs, or every
// UTXO ID if addrs is empty (spec.md §4.4 "getUTXOIDs(addresses?)").
func (s *UTXOSet) GetUTXOIDs(addrs []ids.Address) []ids.ID {
	if len(addrs) == 0 {
		ids := make([]ids.ID, len(s.order))
		copy(ids, s.order)
		return ids
	}
	seen := make(map[ids.ID]struct{})
	var out []ids.ID
	for _, addr := range addrs {
		for id := range s.byAddress[addr] {
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out
}

// MergeByRule combines s with other according to rule, returning a new
// UTXOSet (spec.md §4.4's six set-algebra rules).
func (s *UTXOSet) MergeByRule(other *UTXOSet, rule MergeRule) *UTXOSet {
	merged := NewUTXOSet()
	switch rule {
	case Union:
		merged.AddArray(s.GetAllUTXOs())
		merged.AddArray(other.GetAllUTXOs())
	case Intersection:
		for id, utxo := range s.utxos {
			if _, ok := other.utxos[id]; ok {
				merged.Add(utxo, true)
			}
		}
	case DifferenceSelf:
		for id, utxo := range s.utxos {
			if _, ok := other.utxos[id]; !ok {
				merged.Add(utxo, true)
			}
		}
	case SymDifference:
		for id, utxo := range s.utxos {
			if _, ok := other.utxos[id]; !ok {
				merged.Add(utxo, true)
			}
		}
		for id, utxo := range other.utxos {
			if _, ok := s.utxos[id]; !ok {
				merged.Add(utxo, true)
			}
		}
	case UnionMinusNew:
		merged.AddArray(s.GetAllUTXOs())
		for id := range other.utxos {
			merged.Remove(id)
		}
	case UnionMinusSelf:
		merged.AddArray(other.GetAllUTXOs())
		for id := range s.utxos {
			merged.Remove(id)
		}
	}
	return merged
}
