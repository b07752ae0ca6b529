// Package repository implements data access against SurrealDB.
//
// Each repository wraps the database.Database interface and owns the queries
// and result parsing for one table. SurrealDB's Go client returns loosely
// typed results (maps, RecordID objects, CustomDateTime wrappers), so shared
// parsing helpers in helpers.go normalize them before records are decoded
// into model structs.
//
// Repositories return database sentinel errors (database.ErrNotFound,
// database.ErrDuplicate); the service layer translates them into its own
// error vocabulary.
package repository
