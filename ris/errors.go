package ris

import "errors"

var (
	// ErrInvalidParameter is returned when epsilon or ell is non-positive.
	ErrInvalidParameter = errors.New("ris: invalid parameter")

	// ErrBudgetExceedsNodes documents the clamp-to-n behavior callers can
	// rely on instead of a hard failure: requesting k seeds from a graph
	// with fewer than k nodes silently returns all n nodes rather than
	// returning this error. It is kept so future callers that want strict
	// validation have a sentinel to opt into, but BaseRIS.Run and IMM.Run
	// never return it themselves.
	ErrBudgetExceedsNodes = errors.New("ris: seed budget exceeds node count")
)
