// Package api exposes the vocabulary review engine over HTTP. Handlers
// translate requests into service calls and map service errors to status
// codes and client-safe messages.
package api
