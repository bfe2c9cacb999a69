// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine implements the vote aggregation and ranking core of the
Book Vote service: the book registry, ballot validation, the append-only
vote store, score aggregation and ranking.

# State Model

An Engine owns the registry and the vote store behind one mutex. The pair
shares a lock because ballot validation reads a snapshot of both ("does
this book exist", "has this voter voted") that must stay consistent until
the ballot is appended:

	eng := engine.New(engine.DefaultConfig(), books, ballots)
	ballot, err := eng.SubmitBallot("Gab", allocations)

The engine performs no I/O. Persistence runs after a mutation commits, via
Snapshot(), and a persistence failure is reported but never rolled back
against the in-memory state.

# Validation

ValidateBallot is a pure function. Checks run in a fixed order, each
failing with its own error kind:

 1. ErrEmptyVoter
 2. ErrAlreadyVoted
 3. ErrUnknownBook
 4. ErrSelfVote
 5. ErrInvalidPoints (zero or negative, rejected rather than dropped)
 6. ErrTooManyChoices
 7. ErrDuplicateChoice
 8. ErrPointBudgetMismatch (exact equality with the budget)

# Aggregation and Ranking

Aggregate and Rank are pure functions over snapshots. Totals are exact
integer sums. Allocations referencing removed books are excluded entirely.
Equal totals rank in registration order; the tie-break is an explicit
comparison, not a sort-stability artifact.

# Identity

Member identity is a case-insensitive name match, isolated in a single
equality function (sameMember) so a real identity system is a one-point
change.
*/
package engine
