// Package harness runs scan scenarios with expected outcomes.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: example_basin
//	description: "Two basins under the spring"
//	scan: |
//	  x=495, y=2..7
//	  y=7, x=495..501
//	# or: scan_file: ../scans/example.cue (relative to the scenario file)
//	max_steps: 0        # optional; 0 keeps the engine default
//	no_settle: false    # optional; skip the stabilization pass
//	run_id: example-1   # optional; fixed journal ID
//	expect:
//	  water: 57
//	  still: 29
//	  steps: 59         # optional
//	  error: ""         # optional: parse, build or quota
//	assertions:
//	  - type: tile
//	    x: 497
//	    y: 5
//	    tile: still     # sand, clay, water, still or flowing
//	  - type: row
//	    y: 13
//	    clay: 7
//	    water: 2
//	    still: 0
//
// # Deterministic Testing
//
// Each scenario runs on a fresh engine with its own logical clock and is
// journaled into an in-memory store under a fixed run ID, so the result,
// its journal record and its rendering are identical across runs. The
// rendering (with flowing water shown) is what RunWithGolden compares.
package harness
