// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainkit/utxowallet/ids"
)

// roundTripFunc lets a test stand in for an HTTP transport with a
// canned response, satisfying this package's HTTPClient interface.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// jsonRPCOK wraps result in a JSON-RPC 2.0 success envelope, the wire
// shape github.com/gorilla/rpc/v2/json2's DecodeClientResponse expects.
func jsonRPCOK(t *testing.T, result interface{}) *http.Response {
	t.Helper()
	res, err := json.Marshal(result)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"result":  json.RawMessage(res),
		"error":   nil,
		"id":      "1",
	})
	require.NoError(t, err)
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     make(http.Header),
	}
}

// requestMethod pulls the "method" field out of a request's encoded
// JSON-RPC body, letting tests assert which endpoint a Client call hit.
func requestMethod(t *testing.T, req *http.Request) string {
	t.Helper()
	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	req.Body = io.NopCloser(bytes.NewReader(body))
	var envelope struct {
		Method string `json:"method"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Method
}

func TestGetUTXOs(t *testing.T) {
	require := require.New(t)

	utxoBytes := []byte{1, 2, 3, 4}
	var gotMethod string
	httpClient := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		gotMethod = requestMethod(t, req)
		return jsonRPCOK(t, &GetUTXOsReply{
			NumFetched: "1",
			UTXOs:      []string{"0x" + hex.EncodeToString(utxoBytes)},
			Encoding:   "hex",
		}), nil
	})
	client := NewClient("http://node.example/ext/bc/X", "avm", httpClient)

	got, err := client.GetUTXOs(context.Background(), []string{"X-addr1"}, "", 0)
	require.NoError(err)
	require.Equal("avm.getUTXOs", gotMethod)
	require.Len(got, 1)
	require.Equal(utxoBytes, got[0])
}

func TestIssueTx(t *testing.T) {
	require := require.New(t)

	wantID := ids.ID{9}
	var gotMethod string
	httpClient := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		gotMethod = requestMethod(t, req)
		return jsonRPCOK(t, &JSONTxID{TxID: wantID}), nil
	})
	client := NewClient("http://node.example/ext/bc/X", "avm", httpClient)

	got, err := client.IssueTx(context.Background(), []byte{1, 2, 3})
	require.NoError(err)
	require.Equal("avm.issueTx", gotMethod)
	require.Equal(wantID, got)
}

func TestGetTx(t *testing.T) {
	require := require.New(t)

	txBytes := []byte{5, 6, 7}
	httpClient := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonRPCOK(t, &FormattedTx{Tx: "0x" + hex.EncodeToString(txBytes), Encoding: "hex"}), nil
	})
	client := NewClient("http://node.example/ext/bc/X", "avm", httpClient)

	got, err := client.GetTx(context.Background(), ids.ID{1})
	require.NoError(err)
	require.Equal(txBytes, got)
}

func TestGetTxStatus(t *testing.T) {
	require := require.New(t)

	var gotMethod string
	httpClient := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		gotMethod = requestMethod(t, req)
		return jsonRPCOK(t, &GetTxStatusReply{Status: "Accepted"}), nil
	})
	client := NewClient("http://node.example/ext/bc/X", "avm", httpClient)

	status, err := client.GetTxStatus(context.Background(), ids.ID{1})
	require.NoError(err)
	require.Equal("avm.getTxStatus", gotMethod)
	require.Equal("Accepted", status.Status)
}

func TestGetAssetDescription(t *testing.T) {
	require := require.New(t)

	httpClient := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonRPCOK(t, &AssetDescriptionReply{
			AssetID:      ids.ID{1},
			Name:         "Test Token",
			Symbol:       "TEST",
			Denomination: 9,
		}), nil
	})
	client := NewClient("http://node.example/ext/bc/X", "avm", httpClient)

	desc, err := client.GetAssetDescription(context.Background(), "TEST")
	require.NoError(err)
	require.Equal("Test Token", desc.Name)
	require.Equal(byte(9), desc.Denomination)
}

func TestGetStakingAssetID(t *testing.T) {
	require := require.New(t)

	want := ids.ID{2}
	httpClient := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonRPCOK(t, &GetStakingAssetIDReply{AssetID: want}), nil
	})
	client := NewClient("http://node.example/ext/bc/P", "platform", httpClient)

	got, err := client.GetStakingAssetID(context.Background(), ids.ID{})
	require.NoError(err)
	require.Equal(want, got)
}

// A non-2xx HTTP status surfaces as an error rather than attempting to
// decode a JSON-RPC envelope out of an error page.
func TestSendRequestNon2xxStatus(t *testing.T) {
	require := require.New(t)

	httpClient := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(bytes.NewReader(nil)),
		}, nil
	})
	client := NewClient("http://node.example/ext/bc/X", "avm", httpClient)

	_, err := client.GetTxStatus(context.Background(), ids.ID{1})
	require.Error(err)
}

func TestTrimHexPrefix(t *testing.T) {
	require := require.New(t)

	require.Equal("abcd", trimHexPrefix("0xabcd"))
	require.Equal("abcd", trimHexPrefix("abcd"))
	require.Equal("", trimHexPrefix(""))
}

func TestMethodNamespacing(t *testing.T) {
	client := NewClient("http://node.example", "platform", nil)
	require.Equal(t, "platform.getTx", client.method("getTx"))
	require.Equal(t, "platform.getUTXOs", client.method("getUTXOs"))
}
