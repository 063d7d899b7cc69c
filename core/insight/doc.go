// Package insight wraps an external text-generation service that writes prose
// analysis of the park state.
//
// The Service never fails: any error from the Generator is logged, recorded and
// replaced by a fixed fallback text with confidence 0. Requests are not
// retried and no timeout is applied beyond the caller's context.
package insight
