// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rpc is the JSON-RPC 2.0 client this module's façades use to
// fetch remote UTXOs and submit built transactions (spec.md §6 "RPC
// client: abstract as {call(method, params) → value}, with a pluggable
// HTTP transport"). Grounded on vms/platformvm/client.go's
// EndpointRequester-based method shapes (GetUTXOs/IssueTx/GetTx/
// GetTxStatus/GetAssetDescription/GetStakingAssetID) and
// utils/rpc/json.go's SendJSONRequest, reusing the latter's wire codec
// (github.com/gorilla/rpc/v2/json2, the corpus's JSON-RPC 2.0 encoder)
// instead of hand-rolling one.
package rpc

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"

	json2 "github.com/gorilla/rpc/v2/json2"

	"github.com/chainkit/utxowallet/ids"
)

// HTTPClient is the minimal surface this package needs from an HTTP
// transport, letting callers inject a mock (spec.md §6 "library is
// transport-agnostic beyond an injected HTTP client").
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// EndpointRequester sends one JSON-RPC 2.0 request per call.
type EndpointRequester interface {
	SendRequest(ctx context.Context, method string, params, reply interface{}, options ...Option) error
}

type endpointRequester struct {
	uri        string
	httpClient HTTPClient
}

// NewEndpointRequester returns an EndpointRequester posting JSON-RPC
// requests to uri via httpClient (http.DefaultClient if nil).
func NewEndpointRequester(uri string, httpClient HTTPClient) EndpointRequester {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &endpointRequester{uri: uri, httpClient: httpClient}
}

func (e *endpointRequester) SendRequest(ctx context.Context, method string, params, reply interface{}, options ...Option) error {
	body, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed to encode client params: %w", err)
	}

	u, err := url.Parse(e.uri)
	if err != nil {
		return fmt.Errorf("failed to parse uri: %w", err)
	}
	ops := NewOptions(options)
	u.RawQuery = ops.queryParams.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = ops.headers
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}
	defer closeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("received status code: %d", resp.StatusCode)
	}
	if err := json2.DecodeClientResponse(resp.Body, reply); err != nil {
		return fmt.Errorf("failed to decode client response: %w", err)
	}
	return nil
}

func closeBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

// Client is a thin JSON-RPC passthrough for one chain's API namespace
// (e.g. "avm", "platform"): it decodes cb58/hex fields and leaves
// everything else to the caller (spec.md §6 "the client is a
// passthrough that decodes cb58 hex fields ... on the wire").
type Client struct {
	requester EndpointRequester
	namespace string
}

// NewClient returns a Client issuing method "namespace.*" requests
// against uri (e.g. uri+"/ext/bc/X", namespace "avm").
func NewClient(uri, namespace string, httpClient HTTPClient) *Client {
	return &Client{requester: NewEndpointRequester(uri, httpClient), namespace: namespace}
}

func (c *Client) method(name string) string {
	return c.namespace + "." + name
}

// Call issues an arbitrary JSON-RPC method against this client's
// namespace, for endpoints this package doesn't wrap directly.
func (c *Client) Call(ctx context.Context, method string, params, reply interface{}, options ...Option) error {
	return c.requester.SendRequest(ctx, c.method(method), params, reply, options...)
}

// GetUTXOsArgs is avm.getUTXOs'/platform.getUTXOs' shared request shape.
type GetUTXOsArgs struct {
	Addresses   []string `json:"addresses"`
	SourceChain string   `json:"sourceChain,omitempty"`
	Limit       uint32   `json:"limit,omitempty"`
	Encoding    string   `json:"encoding,omitempty"`
}

// GetUTXOsReply is the hex-encoded UTXO bytes the node returns.
type GetUTXOsReply struct {
	NumFetched string   `json:"numFetched"`
	UTXOs      []string `json:"utxos"`
	Encoding   string   `json:"encoding"`
}

// GetUTXOs fetches the hex-encoded UTXOs addrs can spend, optionally
// restricted to sourceChain's shared-memory atomic UTXOs.
func (c *Client) GetUTXOs(ctx context.Context, addrs []string, sourceChain string, limit uint32, options ...Option) ([][]byte, error) {
	reply := &GetUTXOsReply{}
	err := c.requester.SendRequest(ctx, c.method("getUTXOs"), &GetUTXOsArgs{
		Addresses:   addrs,
		SourceChain: sourceChain,
		Limit:       limit,
		Encoding:    "hex",
	}, reply, options...)
	if err != nil {
		return nil, err
	}
	utxos := make([][]byte, len(reply.UTXOs))
	for i, hexUTXO := range reply.UTXOs {
		b, err := hex.DecodeString(trimHexPrefix(hexUTXO))
		if err != nil {
			return nil, err
		}
		utxos[i] = b
	}
	return utxos, nil
}

// FormattedTx is the shared request/response shape for issueTx/getTx.
type FormattedTx struct {
	Tx       string `json:"tx"`
	Encoding string `json:"encoding,omitempty"`
}

// JSONTxID wraps a single returned/accepted tx ID.
type JSONTxID struct {
	TxID ids.ID `json:"txID"`
}

// IssueTx submits txBytes' hex encoding and returns the accepted tx ID.
func (c *Client) IssueTx(ctx context.Context, txBytes []byte, options ...Option) (ids.ID, error) {
	reply := &JSONTxID{}
	err := c.requester.SendRequest(ctx, c.method("issueTx"), &FormattedTx{
		Tx:       "0x" + hex.EncodeToString(txBytes),
		Encoding: "hex",
	}, reply, options...)
	return reply.TxID, err
}

// GetTx fetches the hex-encoded bytes of a previously issued tx.
func (c *Client) GetTx(ctx context.Context, txID ids.ID, options ...Option) ([]byte, error) {
	reply := &FormattedTx{}
	err := c.requester.SendRequest(ctx, c.method("getTx"), &FormattedTx{Tx: txID.String(), Encoding: "hex"}, reply, options...)
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(trimHexPrefix(reply.Tx))
}

// GetTxStatusReply reports one of a small set of node-defined statuses
// ("Accepted", "Rejected", "Processing", "Dropped", "Unknown").
type GetTxStatusReply struct {
	Status string `json:"status"`
}

// GetTxStatus polls the node for txID's current status.
func (c *Client) GetTxStatus(ctx context.Context, txID ids.ID, options ...Option) (*GetTxStatusReply, error) {
	reply := &GetTxStatusReply{}
	err := c.requester.SendRequest(ctx, c.method("getTxStatus"), &JSONTxID{TxID: txID}, reply, options...)
	return reply, err
}

// AssetDescriptionReply is avm.getAssetDescription's reply shape.
type AssetDescriptionReply struct {
	AssetID      ids.ID `json:"assetID"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Denomination byte   `json:"denomination"`
}

// GetAssetDescription looks up assetID's display metadata.
func (c *Client) GetAssetDescription(ctx context.Context, assetID string, options ...Option) (*AssetDescriptionReply, error) {
	reply := &AssetDescriptionReply{}
	err := c.requester.SendRequest(ctx, c.method("getAssetDescription"), struct {
		AssetID string `json:"assetID"`
	}{AssetID: assetID}, reply, options...)
	return reply, err
}

// GetStakingAssetIDReply wraps the single returned asset ID.
type GetStakingAssetIDReply struct {
	AssetID ids.ID `json:"assetID"`
}

// GetStakingAssetID returns the asset ID staked on subnetID (the
// primary network's ids.ID{} for AVAX itself).
func (c *Client) GetStakingAssetID(ctx context.Context, subnetID ids.ID, options ...Option) (ids.ID, error) {
	reply := &GetStakingAssetIDReply{}
	err := c.requester.SendRequest(ctx, c.method("getStakingAssetID"), struct {
		SubnetID ids.ID `json:"subnetID"`
	}{SubnetID: subnetID}, reply, options...)
	return reply.AssetID, err
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
