// Package database owns the connection pool and everything that runs against
// it before entity code does: the connection manager and factory, request
// scoped sessions, schema creation with foreign key constraints, migration
// bookkeeping, SQL seed files, query hooks and engine error classification.
package database
