// Package dashboard implements the admin dashboard's recent-events summary:
// a single-shot loader over an injected event source, a view state machine
// (loading, empty, populated) bound to one activation at a time, the status
// indicator mapping and the statistic tiles shown above the table.
package dashboard
