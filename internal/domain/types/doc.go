// Package types holds the plain data types persisted and exchanged by weightlog.
package types
