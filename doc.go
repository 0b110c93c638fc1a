// Package investrak provides the core types and persistence layer for
// tracking investment portfolios, their holdings, financial goals, and
// point-in-time value snapshots. It is designed to be local-first: all
// state lives in flat, human-readable JSONL files owned by a single
// process.
//
// The core functionalities include:
//   - Domain Model: immutable value records (Portfolio, Holding, Goal,
//     Snapshot) validated at construction.
//   - File Store: durable CRUD over one JSONL collection per entity type,
//     with atomic whole-collection replacement on every write and
//     referential integrity between holdings and portfolios.
//   - Analytics: stateless aggregation of invested value, profit and loss,
//     and snapshot-based performance metrics, computed with exact decimal
//     arithmetic.
//
// This package serves as the foundational logic for the `itk` command-line
// tool and the web front end, ensuring that all surfaces operate on a
// single source of truth.
package investrak
