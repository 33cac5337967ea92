// Package domain defines the data model and contracts shared across weightlog.
//
// Plain types live in the types subpackage and storage/service contracts in
// the interfaces subpackage; both are re-exported here as aliases so callers
// import a single package.
package domain
