// Package models defines the core domain models for settleup.
//
// # Models
//
//   - Transfer: a directed payment from one person to another
//   - Balance: a person's net position after aggregating transfers
//   - Settlement: the result of minimizing the transfers needed to clear a set of balances
//   - Expense: a shared bill that can be expanded into transfers
//
// People are identified by opaque, case-sensitive name strings. Two balances in
// the same set never share a name when they come from aggregation; callers that
// build balance sets by hand are responsible for keeping names unique.
//
// # Amounts
//
// Every amount is a shopspring decimal. No float64 arithmetic happens anywhere
// in the domain. On the wire amounts are plain JSON numbers ("amount": 12.5);
// numeric strings are accepted on input as well.
//
// # Lifecycle
//
// Models are transient values. They are created per request, returned by value
// and never persisted.
package models
