// Package crypto holds the small hashing helpers weightlog shows to users.
//
// Fingerprint gives a short, human-comparable digest of an export file so a
// backup can be checked against the one printed when it was written.
package crypto
