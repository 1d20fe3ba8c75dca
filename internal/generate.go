package internal

// The ent client is generated into internal/repo from the schemas in
// internal/schema. Run `go generate ./internal` after schema changes.

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ./repo --feature sql/upsert ./schema
