// Package repository holds the in-memory registries behind the booking
// flow. The sentinel values below are reused across repositories and
// services so callers can distinguish failure scenarios with
// errors.Is: ErrAlreadyReserved signals that another session won the
// race for a table, while ErrTableLocked marks a table that is outside
// the selectable set entirely.
package repository

import "errors"

// ErrNotFound is returned when a referenced venue, table, bottle or
// user id does not exist. Not retried.
var ErrNotFound = errors.New("not found")

// ErrInvalidTransition is returned when a status change violates the
// table lifecycle, e.g. checking in a locked table.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrAlreadyReserved is returned when reserving a table that is
// already reserved. The first AVAILABLE to RESERVED transition wins;
// later callers get this error, never a silent success.
var ErrAlreadyReserved = errors.New("table already reserved")

// ErrTableLocked is returned for any booking action against a locked
// (or maintenance) table.
var ErrTableLocked = errors.New("table locked")

// ErrTableUnavailable is returned when selecting a table that is
// occupied or reserved by someone else. Callers should re-fetch the
// floor and let the guest pick again.
var ErrTableUnavailable = errors.New("table unavailable")

// ErrMinimumNotMet is returned when confirming a tab below the table's
// minimum spend. Advisory; the session stays open and no data is lost.
var ErrMinimumNotMet = errors.New("minimum spend not met")

// ErrReservationConflict is returned when a confirmation raced another
// reservation for the same table. The cart is preserved.
var ErrReservationConflict = errors.New("reservation conflict")

// ErrSessionClosed is returned when mutating a session that already
// reached a terminal state (confirmed or cancelled).
var ErrSessionClosed = errors.New("session closed")
