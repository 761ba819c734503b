package models

// FavoritesSchemaVersion is the current layout of the favorites state record.
// Records persisted with a different version are rejected on load.
const FavoritesSchemaVersion = 1

// FavoritesRecord is the favorites list persisted as a single versioned JSONB
// document, keyed by user.
type FavoritesRecord struct {
	SchemaVersion int      `json:"schemaVersion"`
	ProductIDs    []string `json:"productIDs"`
}
