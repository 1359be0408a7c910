// Package server provides the JSON-RPC service for the comparison
// utilities.
//
// The service listens on TCP and frames messages with Content-Length
// headers (go.lsp.dev/jsonrpc2). Each connection is an independent
// session, and each request parses and compares with private state.
//
// # Methods
//
//   - strucdiff/compare - compare two documents, returning records and stats
//   - strucdiff/convert - re-encode a document in another format
//   - strucdiff/ping    - liveness check
//
// Start it with:
//
//	sd serve -addr localhost:9130
package server
