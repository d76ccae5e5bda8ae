// SPDX-License-Identifier: MIT

// Package engine is the entry point for applications: one Engine bundles the
// configured solver, aggregation and sensitivity settings, logging and
// optional Prometheus metrics behind the six AHP operations (build, solve,
// aggregate, consensus, sensitivity, synthesis) plus batch helpers.
//
// An Engine holds no per-call state and is safe for concurrent use.
package engine
