// Package transfer encodes and decodes weightlog export files.
//
// An export is {"data": Dataset, "prefs": Prefs}. Older files hold a bare
// dataset and are still accepted. Either form may be wrapped in a
// passphrase-sealed blob produced by store.Seal.
package transfer
