// Package scan loads ground cross-sections into ir.Scan values.
//
// Three input formats are supported:
//
// Text (the native format), one vein per line:
//
//	x=495, y=2..7
//	y=7, x=495..501
//
// YAML, with the fixed axis as a number and the spanned axis as a
// two-element list or an "A..B" string:
//
//	veins:
//	  - {x: 495, y: [2, 7]}
//	  - {y: 7, x: "495..501"}
//
// CUE, same shape as YAML under a top-level veins list. CUE scans can use
// comprehensions to generate repetitive geometry.
//
// Malformed input is always fatal: loaders return a *ParseError and no
// partial scan.
package scan
