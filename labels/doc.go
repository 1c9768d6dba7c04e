// Package labels maps discrete class labels onto the dense integer codes
// that estimators train on, and back again.
//
// What & Why:
//
//	Callers label samples with whatever discrete values suit them: class ids,
//	string names, enum-like integer types. Estimators in this module only ever
//	see codes 0..K-1. An Encoder is built once per dataset from the observed
//	labels, with one reserved value meaning "this sample has no label yet".
//	That sentinel is mapped to the out-of-band code Unlabeled (-1), so it can
//	never collide with a real class code.
//
// Sentinel policy:
//   - Signed integer label types default to -1 (DefaultUnlabeled).
//   - Strings and unsigned integers have no natural out-of-band value; the
//     caller must choose one explicitly, otherwise ErrNoSentinel is returned.
//
// Ordering:
//
//	Classes are sorted ascending (numeric or lexicographic), so code k always
//	refers to the k-th smallest label. Two encoders built from the same label
//	multiset produce identical codes.
//
// Complexity:
//   - NewEncoder: O(N log K) time, O(K) memory.
//   - Encode/Decode: O(N) time.
package labels
