// Package sim provides the discrete-event simulation engine for the guitar
// factory manufacturing game.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: Event types that drive the simulation (ShiftStart, TaskCompletion, Restock, DispatchPickup)
//   - factory.go: The event loop, the greedy task pump, and week settlement
//   - stage.go: The per-stage state machine (Idle → Processing → QualityCheck) and quality gates
//
// # Architecture
//
// One Factory models one simulated work-week: four production stages (body
// making, neck making, painting, assembly) pull workers from per-role
// ResourcePools, raw materials from the MaterialStore, and work-in-progress
// from capacity-bounded Buffers. Completed guitars collect in the
// finished-goods buffer until the DispatchController ships a batch. Money
// flows through the append-only Ledger; the Campaign chains weeks by
// carrying each week's final Snapshot into the next.
//
// The engine is single-threaded and cooperative: logical workers are
// concurrently-busy resource slots whose completions are future events,
// interleaved purely by time order. All randomness flows through a
// PartitionedRNG with one stream per stochastic concern, so a seeded run
// is bit-for-bit reproducible.
package sim
