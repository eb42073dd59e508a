// Package storeapi implements the OrderStore port against the external
// order service's HTTP API.
//
// Every response arrives in the service's standard envelope:
//
//	{"success": true, "data": {...}}
//	{"success": false, "error": "human readable message"}
//
// Requests are authenticated with a bearer credential obtained from a
// TokenSource. Transport-level failures map to errs.NetworkError so the
// application can distinguish "the store said no" from "the store was
// unreachable".
package storeapi
