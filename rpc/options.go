// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"net/http"
	"net/url"
)

// Option configures one outgoing RPC request's headers/query string.
type Option func(*Options)

// Options accumulates per-request header and query-string overrides
// (spec.md §6 "RPC client: abstract as {call(method, params) → value},
// with a pluggable HTTP transport").
type Options struct {
	headers     http.Header
	queryParams url.Values
}

// NewOptions builds an Options from the given Option list.
func NewOptions(opts []Option) *Options {
	o := &Options{headers: make(http.Header), queryParams: make(url.Values)}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithHeader sets an HTTP header on the outgoing request.
func WithHeader(key, value string) Option {
	return func(o *Options) { o.headers.Set(key, value) }
}

// WithQueryParam sets a URL query parameter on the outgoing request.
func WithQueryParam(key, value string) Option {
	return func(o *Options) { o.queryParams.Set(key, value) }
}
