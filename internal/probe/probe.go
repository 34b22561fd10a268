package probe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
)

// Output lines written by Run.
const (
	MsgConnected = "Connection to the database is successful!"
	MsgNotLive   = "Connected, but the connection is not live: %v"
	MsgClosed    = "%s connection is closed."
	MsgError     = "Error: %v"
)

// Outcome records how far a probe got.
type Outcome struct {
	Connected bool  // Open returned a handle
	Live      bool  // the liveness check passed
	Closed    bool  // the handle was closed without error
	Err       error // first failure, if any
}

// OK reports whether the probe connected, saw a live connection and closed it.
func (o Outcome) OK() bool {
	return o.Connected && o.Live && o.Closed && o.Err == nil
}

// Run performs one connect, check, close cycle against d and writes
// human-readable status lines to w. It never fails: every error is printed
// and recorded in the returned Outcome.
func Run(ctx context.Context, w io.Writer, d Driver, cfg Config) (out Outcome) {
	var db *sql.DB

	defer func() {
		if db == nil {
			return
		}
		if err := db.Close(); err != nil {
			fmt.Fprintf(w, MsgError+"\n", fmt.Errorf("closing connection: %w", err))
			if out.Err == nil {
				out.Err = err
			}
			return
		}
		out.Closed = true
		fmt.Fprintf(w, MsgClosed+"\n", d.Name())
	}()

	var err error
	db, err = d.Open(ctx, cfg)
	if err == nil && db == nil {
		err = errors.New("driver returned no connection")
	}
	if err != nil {
		db = nil
		out.Err = err
		fmt.Fprintf(w, MsgError+"\n", err)
		return out
	}
	out.Connected = true

	if err := db.PingContext(ctx); err != nil {
		out.Err = err
		fmt.Fprintf(w, MsgNotLive+"\n", err)
		return out
	}
	out.Live = true
	fmt.Fprintln(w, MsgConnected)
	return out
}
