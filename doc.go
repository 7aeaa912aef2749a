// Package savings provides the types and functions to keep track of personal
// savings goals. It is designed to be local-first: all the state lives on the
// user's machine and is persisted as a single, human-readable JSON document.
//
// The core functionalities include:
//   - Goal Ledger: the authoritative, in-memory collection of goals and the
//     operations that mutate it (create, edit, delete, deposit or withdraw
//     money, reorder). Every successful mutation is persisted.
//   - Session: a thin binding on top of the Ledger that loads the state once
//     and notifies subscribers after each mutation.
//   - Helpers: currency formatting, progress percentages and the validation of
//     user input before it reaches the Ledger.
//
// Persistence backends live in the storage package. This package serves as the
// foundational logic for the `sgs` command-line tool.
package savings
