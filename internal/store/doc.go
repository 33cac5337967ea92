// Package store provides file-based persistence for weightlog.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as indented JSON on disk. Writes go through a temp file and
// a rename so an interrupted save never leaves a truncated file. All methods
// are concurrency-safe via internal locking. Files live under the configured
// home directory:
//   - dataset.json (DatasetFileStore)
//   - prefs.json   (PrefsFileStore)
//
// Seal and Open wrap exports in a passphrase-protected blob (scrypt +
// ChaCha20-Poly1305) for users who keep backups somewhere shared.
package store
