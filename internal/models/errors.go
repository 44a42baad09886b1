package models

import "errors"

// Error constants for record and workflow operations
var (
	ErrInvalidRecordID        = errors.New("invalid record ID")
	ErrRecordNotFound         = errors.New("record not found")
	ErrFieldNotInSchema       = errors.New("field is not part of the required-field schema")
	ErrFieldNotMissing        = errors.New("field is not currently missing on this record")
	ErrConfirmationNotFound   = errors.New("confirmation expired or not found")
	ErrConfirmationMismatch   = errors.New("confirmation does not match the requested action")
	ErrAccessListDenied       = errors.New("user is not on the magistrate access list")
	ErrInvalidPIN             = errors.New("incorrect PIN")
	ErrSecureAreaLocked       = errors.New("secure area token missing or expired")
	ErrNoImportableRows       = errors.New("no importable rows found in spreadsheet")
	ErrMissingSheetColumns    = errors.New("could not identify the name column")
	ErrInvalidTaskStatus      = errors.New("invalid task status")
	ErrInvalidSortKey         = errors.New("invalid sort key")
	ErrStaleWorkingSet        = errors.New("working set superseded by a newer fetch")
	ErrInvalidSortDirection   = errors.New("invalid sort direction")
	ErrMagistrateConfigAbsent = errors.New("magistrate access configuration not found")
)
