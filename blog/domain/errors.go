package domain

import "errors"

var (
	// ErrContentRead means a post's content file is missing or unreadable
	ErrContentRead = errors.New("content read failed")

	// ErrStoreWrite means inserting or updating a document failed
	ErrStoreWrite = errors.New("store write failed")

	// ErrManifestPersist means the manifest could not be rewritten
	ErrManifestPersist = errors.New("manifest persist failed")

	// ErrInvalidManifest means the manifest could not be parsed into records
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrDuplicateKey means the store already holds a document with the same ID
	ErrDuplicateKey = errors.New("duplicate key")
)
