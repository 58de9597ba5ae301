package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnknownAccount indicates an entry references an account that is not in
// the chart of accounts. Classification is a total function over the chart;
// defaulting silently would corrupt every downstream category total.
var ErrUnknownAccount = errors.New("unknown account")

// ErrInvalidEntry indicates a ledger entry that is not a well-formed
// double-entry line (both or neither of debit/credit populated, or a
// non-positive amount). Such entries are rejected at ingestion.
var ErrInvalidEntry = errors.New("invalid ledger entry")

// ErrUnsupportedFormat indicates an export format tag the collaborator
// does not render.
var ErrUnsupportedFormat = errors.New("unsupported export format")
