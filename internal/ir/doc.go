// Package ir provides the scan representation shared by every other package.
//
// A scan is the parsed description of a ground cross-section: a set of
// axis-aligned clay veins. This package contains the types, a canonical
// JSON encoding and the content-addressed scan hash. All other internal
// packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Coordinates are plain ints; x grows right, y grows down
//   - All JSON tags use snake_case
//   - The scan hash ignores vein order and the source name
package ir
