// Package variance derives the per-entry variance of a weight series.
//
// The variance of an entry is its weight minus the weight of the entry
// immediately before it in the sequence. There is no skip-over: an entry that
// follows a blank one gets no variance, even if an earlier entry has a weight.
package variance
