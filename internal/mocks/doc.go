// Package mocks provides hand-written fakes of the service interfaces
// consumed by the HTTP layer.
//
// Each fake exposes a function field per method plus default return
// values used when the function is not set:
//
//	reviews := mocks.NewMockReviewService(
//	    mocks.WithRecord(record),
//	)
//	handler := api.NewReviewHandler(reviews, validator, logger)
package mocks
