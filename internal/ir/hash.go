package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
)

// DomainScan separates scan hashes from any other hash in the journal.
const DomainScan = "seep/scan/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte keeps the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// CanonicalVeins returns the scan's veins in a stable order:
// axis, then line, then from, then to. Duplicates are kept.
func CanonicalVeins(s Scan) []Vein {
	veins := s.Veins()
	slices.SortFunc(veins, func(a, b Vein) int {
		switch {
		case a.Axis != b.Axis:
			if a.Axis < b.Axis {
				return -1
			}
			return 1
		case a.Line != b.Line:
			return a.Line - b.Line
		case a.From != b.From:
			return a.From - b.From
		default:
			return a.To - b.To
		}
	})
	return veins
}

// ScanHash computes the content-addressed identity of a scan.
// Two scans with the same veins hash identically regardless of vein order
// or source file.
func ScanHash(s Scan) (string, error) {
	veins := CanonicalVeins(s)
	list := make([]any, len(veins))
	for i, v := range veins {
		list[i] = map[string]any{
			"axis": v.Axis,
			"line": v.Line,
			"from": v.From,
			"to":   v.To,
		}
	}

	canonical, err := MarshalCanonical(map[string]any{
		"veins":   list,
		"version": ScanVersion,
	})
	if err != nil {
		return "", fmt.Errorf("ScanHash: failed to marshal: %w", err)
	}

	return hashWithDomain(DomainScan, canonical), nil
}
