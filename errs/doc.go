// Package errs defines the error taxonomy shared by every package in
// objmeasure.
//
// Every error raised by this module carries a Kind: a short, checkable
// category such as InvalidArgument or UnknownFeature. Callers compare
// against a Kind with Is, which unwraps through any github.com/pkg/errors
// wrapping added as the error propagates up through the driver.
package errs
