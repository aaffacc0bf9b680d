// Package memory provides the low-level storage primitives for the
// sequence container. It includes RawStorage, an owner of a single
// fixed-capacity block of element slots, and the Allocator interface
// that hands blocks out and takes them back.
//
// RawStorage never constructs, destroys, or tracks live elements;
// that bookkeeping belongs entirely to its caller. The package is
// dependency-free and forms the foundation the container builds on.
package memory
