// Package events decouples answer recording from its side effects.
//
// The review service emits a ReviewRecorded event after each committed
// answer; handlers such as the statistics recorder subscribe through an
// EventEmitter without the review service knowing about them.
package events
