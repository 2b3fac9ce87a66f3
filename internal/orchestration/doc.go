// Package orchestration coordinates concurrent execution of binary additions
// and aggregates results for comparison. It decouples business logic from
// presentation via the ResultPresenter and ErrorHandler interfaces.
package orchestration
