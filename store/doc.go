// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists survey responses.

# Lifecycle

Open connects, pings, and creates the schema if needed. It is safe to run on
every start; existing rows are kept.

	rs, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer rs.Close()

One ResponseStore is shared by all requests. The *sql.DB pool underneath is
safe for concurrent use and the database serializes writes. Calls made after
Close fail with ErrClosed.

# Operations

	id, err := rs.Insert(ctx, "Do you like it?", "Yes")
	rows, err := rs.ListAll(ctx) // ascending id, never nil
	n, err := rs.Count(ctx)

# Errors

Every failure is returned as *Error carrying the operation name. Callers
treat it as an internal error; nothing is retried.
*/
package store
