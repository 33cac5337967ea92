// Package tracker maintains the weight dataset.
//
// It edits the dataset header and the entry list, re-deriving variances after
// every structural change, and moves whole datasets in and out through export
// files. Persistence goes through the domain.DatasetStore; preferences carried
// by an import are handed to the domain.PrefsService.
package tracker
