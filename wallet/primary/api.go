// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package primary

import (
	"context"
	"fmt"

	"github.com/chainkit/utxowallet/config"
	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/rpc"
	"github.com/chainkit/utxowallet/utils/formatting/address"
	"github.com/chainkit/utxowallet/vms/components/avax"
	pbuilder "github.com/chainkit/utxowallet/wallet/chain/p/builder"
	xbuilder "github.com/chainkit/utxowallet/wallet/chain/x/builder"
)

// fetchChain is one chain this module can populate a UTXOs store from:
// its ID, alias (used to format addresses in requests), and the RPC
// client issuing its "getUTXOs" calls.
type fetchChain struct {
	id     ids.ID
	alias  string
	client *rpc.Client
}

// FetchState queries uri's P-chain and X-chain endpoints for every
// UTXO spendable by addrs — on every (source, destination) chain pair
// this module knows about, so shared-memory imports/exports land
// alongside each chain's own UTXOs — and returns a populated UTXOs
// store plus each chain's wallet Context (spec.md §9 "populate the
// wallet's UTXO cache from a live node"). Grounded on the teacher's
// wallet/supernet/primary/api.go's FetchState/AddAllUTXOs, trimmed to
// this module's single-page rpc.Client.GetUTXOs (no continuation
// cursor, since spec.md §6 scopes the RPC client down to a plain
// request/reply passthrough rather than a paging iterator).
func FetchState(
	ctx context.Context,
	uri string,
	addrs []ids.Address,
	networkID uint32,
	avaxAssetID ids.ID,
	xChainID ids.ID,
	httpClient rpc.HTTPClient,
) (*pbuilder.Context, *xbuilder.Context, UTXOs, error) {
	netCtx := config.NewNetworkContext(networkID, avaxAssetID)
	// pbuilder.Context is a type alias for config.NetworkContext (the
	// PlatformVM has no chain identity of its own beyond it), so netCtx
	// already satisfies the P-chain builder's Context type directly.
	pCtx := netCtx
	xCtx := xbuilder.NewContext(netCtx, xChainID)

	chains := []fetchChain{
		{id: config.PrimaryNetworkID, alias: pbuilder.Alias, client: rpc.NewClient(uri+"/ext/bc/P", "platform", httpClient)},
		{id: xChainID, alias: xbuilder.Alias, client: rpc.NewClient(uri+"/ext/bc/X", "avm", httpClient)},
	}

	utxos := NewUTXOs()
	for _, destination := range chains {
		addrStrs := make([]string, len(addrs))
		for i, a := range addrs {
			s, err := address.Format(destination.alias, netCtx.HRP, a.Bytes())
			if err != nil {
				return nil, nil, nil, fmt.Errorf("failed to format address: %w", err)
			}
			addrStrs[i] = s
		}
		for _, source := range chains {
			if err := addAllUTXOs(ctx, utxos, destination, source, addrStrs); err != nil {
				return nil, nil, nil, err
			}
		}
	}
	return pCtx, xCtx, utxos, nil
}

// addAllUTXOs fetches every UTXO addrStrs can spend that was sent from
// source to destination, and records it in utxos.
func addAllUTXOs(ctx context.Context, utxos UTXOs, destination, source fetchChain, addrStrs []string) error {
	utxoBytes, err := destination.client.GetUTXOs(ctx, addrStrs, source.id.String(), 0)
	if err != nil {
		return err
	}
	for _, b := range utxoBytes {
		utxo, err := avax.ParseUTXO(b)
		if err != nil {
			return err
		}
		if err := utxos.AddUTXO(ctx, source.id, destination.id, utxo); err != nil {
			return err
		}
	}
	return nil
}
