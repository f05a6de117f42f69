// Package cookies persists the session cookies of the diary client in the
// local SQLite database, keyed by API origin.
//
// Repository is the row-level contract; SQLiteRepository implements it on a
// dbx.DBTX so it can run on either *sql.DB or *sql.Tx. Store builds on top of
// it and implements the load/save contract the cookie jar uses, replacing the
// whole set for an origin atomically.
package cookies
