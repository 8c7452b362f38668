// Package repository provides a generic repository built on bun for CRUD,
// filtered listing, pagination and upserts. A repository runs on any bun.IDB,
// so the same code serves the pool, a session and a transaction.
package repository
