// Package review records review outcomes and serves the due-word queue.
//
// HistoryRecorder is the persistence side of answering a word: it loads the
// prior record for a (user, word) pair, applies the scheduling engine from
// internal/domain/srs and writes the result in a single transaction. Service
// adds request validation, the ownership check and event emission on top.
package review
