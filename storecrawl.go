// Package storecrawl crawls a paginated e-commerce storefront, normalizes
// its product listings into stable records, and hands the finished record
// set to a pluggable sink suitable for full-text indexing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, rod/, sqlite/).
package storecrawl
