// Package synth generates reproducible toy datasets for exercising
// semi-supervised learners: isotropic Gaussian blobs and partial label masks.
//
// Determinism:
//   - Every generator takes an explicit seed; seed 0 maps to a fixed default.
//   - Draw order is fixed (centers, then samples row by row, then shuffle), so
//     a (config, seed) pair always yields the same dataset.
//   - DeriveSeed splits one seed into independent per-worker streams.
//
// Nothing here reads files: datasets are synthesized in memory only.
package synth
