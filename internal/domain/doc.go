// Package domain contains the core business entities of the vocabulary
// tracker: words, their per-user review records and the statistics
// derived from them. It is independent of storage and transport.
package domain
