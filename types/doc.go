// Package types holds the small value types shared by repositories and
// models: the enum contract and pagination requests and results.
package types
