// Package internalcheck holds source-level policy tests for the library.
//
// The tests load the library packages with go/packages and fail on
// constructs the project forbids, such as drawing key material from
// math/rand. It is not intended for external use and the API may change
// without notice.
package internalcheck
