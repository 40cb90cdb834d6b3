// Package resolve implements the dependency resolver (spec section 4.4):
// expanding a user-requested, ordered, de-duplicated feature list into an
// ordered list where every composite feature's dependencies precede it,
// transitively.
package resolve
