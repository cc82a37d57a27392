package verifier

import (
	"strings"

	"branchaudit/internal/models"
)

const (
	vendorPattern = "WESCO"
	brandPattern  = "KVA"
)

// Matches reports whether a branch belongs to the vendor: "WESCO" in the
// chain or name, or "KVA" in the name. Case-sensitive containment.
func Matches(b models.BranchRecord) bool {
	return strings.Contains(b.Chain, vendorPattern) ||
		strings.Contains(b.Name, vendorPattern) ||
		strings.Contains(b.Name, brandPattern)
}

// Filter returns the matching branches of one file tagged with source
func Filter(source string, branches []models.BranchRecord) []models.MatchedEntry {
	var matched []models.MatchedEntry
	for _, b := range branches {
		if Matches(b) {
			matched = append(matched, models.MatchedEntry{BranchRecord: b, Source: source})
		}
	}
	return matched
}

// Deduplicate keeps the first entry seen for each location, in encounter order
func Deduplicate(entries []models.MatchedEntry) []models.MatchedEntry {
	seen := make(map[string]struct{}, len(entries))
	unique := make([]models.MatchedEntry, 0, len(entries))
	for _, e := range entries {
		key := e.LocationKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, e)
	}
	return unique
}
