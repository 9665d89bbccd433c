// Package sqlite stores named profiles in a local SQLite database using
// the pure-Go modernc.org/sqlite driver. The schema is created from
// embedded migrations on open.
package sqlite
