// Package seqvec implements a contiguous, dynamically-resizable
// sequence container over explicitly managed storage.
//
// A Vector tracks a live prefix of constructed values inside a
// memory.RawStorage block and grows by relocating that prefix into a
// larger block. Element lifetime hooks (copier, mover, destructor,
// default constructor) are registered as options; they decide whether
// relocation moves elements, which cannot fail, or copies them
// transactionally so a failure leaves the container untouched.
//
// A Vector is not safe for concurrent use; callers needing shared
// access must serialize externally.
package seqvec
