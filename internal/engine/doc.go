// Package engine implements the seep percolation simulator.
//
// The engine owns a Grid of tiles and two work queues. Water enters at the
// spring, falls while it can, spreads sideways when clay blocks it, and is
// reconciled upward once a falling column stops making progress.
//
// ARCHITECTURE:
//
// Step-Driven State Machine:
// Every call to Engine.Step performs one unit of work and returns
// immediately. There is no goroutine, no blocking and no cancellation:
//   - Predictable evaluation order
//   - Identical results for identical scans
//   - Termination is observable as "both queues empty"
//
// Work Queues:
//  1. Flow frontier (FIFO): positions still falling or spreading.
//  2. Backtrack stack (LIFO): positions whose column below has stopped
//     making progress and which must be reconciled into pools or lateral
//     overflow.
//
// Step Order:
//  1. If the frontier is non-empty, run one flow step.
//  2. Otherwise pop the backtrack stack and run one backtrack step; if that
//     re-queued overflow, run one flow step in the same tick.
//
// Stabilization:
// After the queues drain, Engine.Settle classifies which water tiles are
// still (pooled) as opposed to water that merely flowed through. The pass
// reads tile state only and never feeds the queues.
//
// INVARIANTS:
//   - Clay is never overwritten
//   - Water never reverts to sand, so the water count never decreases
//   - Every coordinate the engine touches lies inside the padded region
package engine
