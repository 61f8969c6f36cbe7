// Package content holds the compiled-in catalogs shown on the landing page.
//
// Every catalog is a fixed, ordered slice of literal entries. Accessors
// return copies, so callers may reorder or edit what they receive without
// affecting other renders. Numeric-looking values are display strings; no
// value here is computed from another except the partition total.
package content
