// Package diff computes line hunks between an original and a proposed
// buffer and drives an interactive accept/reject review over them.
//
// # Algorithm
//
// Compute performs a single greedy pass. Equal lines advance both sides
// and close any open hunk; on a mismatch the original line is recorded as
// Removed and the proposed line as Added, each only when it does not match
// the other side at the current position. There is no look-ahead, so
// reordered content produces larger hunks than an LCS diff would:
//
//	hunks := diff.Compute(original, proposed)
//
// # Review
//
// A Session holds immutable copies of both buffers and the hunk list.
// Each hunk starts rejected. Reconstruct applies the accepted hunks to a
// fresh copy of the original:
//
//	s := diff.NewSession(original, proposed)
//	s.AcceptCurrent()
//	s.Next()
//	lines := s.Reconstruct()
//
// Accepting every hunk reproduces the proposed buffer; accepting none
// reproduces the original.
package diff
