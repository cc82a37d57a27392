package verifier

import (
	"fmt"
	"strings"

	"branchaudit/internal/models"
)

// Status is the outcome of a single check
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	// StatusWarn is reported but does not fail the run
	StatusWarn Status = "warn"
	// StatusSkip means the check had nothing to inspect
	StatusSkip Status = "skip"
)

// CheckResult is one line of the checklist
type CheckResult struct {
	Name    string
	Status  Status
	Message string
	Details []string
	// Removal marks the confirmed-removed address checks, reported as their own block
	Removal bool
	// Quiet checks are only reported when they do not pass
	Quiet bool
}

// Failed reports whether the check fails the run
func (c CheckResult) Failed() bool {
	return c.Status == StatusFail
}

// Expected post-cleanup state of the Colorado listings
const (
	ExpectedUniqueLocations = 2

	DenverCity          = "Denver"
	DenverAddress       = "11198 E 45th"
	DenverName          = "KVA Supply Co"
	DenverChain         = "WESCO"
	DenverOperatingName = "KVA Supply Co"

	PuebloCity    = "Pueblo"
	PuebloAddress = "115 S Main"
	PuebloChain   = "WESCO"
)

// RemovedAddresses must no longer appear in any listing
var RemovedAddresses = []string{
	"756 S Jason",
	"6883 E 47th",
	"133 Commerce", // Fort Collins
}

// RemainingLocations describes the two locations expected to survive the cleanup
var RemainingLocations = []string{
	"Denver - KVA Supply Co (11198 E 45th Ave)",
	"Pueblo - WESCO (115 S Main St)",
}

// RunChecks evaluates every check; none short-circuits another
func RunChecks(entries, unique []models.MatchedEntry) []CheckResult {
	results := []CheckResult{
		checkUniqueLocations(unique),
	}
	results = append(results, checkDenver(entries)...)
	results = append(results, checkPueblo(entries))
	for _, addr := range RemovedAddresses {
		results = append(results, checkRemoved(entries, addr))
	}
	return results
}

func checkUniqueLocations(unique []models.MatchedEntry) CheckResult {
	res := CheckResult{Name: "unique-locations"}
	if len(unique) != ExpectedUniqueLocations {
		res.Status = StatusFail
		res.Message = fmt.Sprintf("Expected exactly %d unique WESCO locations, found %d", ExpectedUniqueLocations, len(unique))
		return res
	}
	res.Status = StatusPass
	res.Message = fmt.Sprintf("Exactly %d unique WESCO/KVA locations found", ExpectedUniqueLocations)
	res.Details = []string{"(Note: Entries may appear in both metro and trade-specific files)"}
	return res
}

func selectAt(entries []models.MatchedEntry, city, address string) []models.MatchedEntry {
	var out []models.MatchedEntry
	for _, e := range entries {
		if e.City == city && strings.Contains(e.Address1, address) {
			out = append(out, e)
		}
	}
	return out
}

// checkDenver yields the presence check and the consistency check for the
// KVA Supply Co location, which may appear in several files.
func checkDenver(entries []models.MatchedEntry) []CheckResult {
	denver := selectAt(entries, DenverCity, DenverAddress)

	present := CheckResult{Name: "denver-present", Quiet: true}
	if len(denver) < 1 {
		present.Status = StatusFail
		present.Message = fmt.Sprintf("Expected at least 1 Denver KVA Supply Co entry, found %d", len(denver))
		consistent := CheckResult{
			Name:    "denver-consistency",
			Status:  StatusSkip,
			Message: "No Denver KVA Supply Co entries to compare",
		}
		return []CheckResult{present, consistent}
	}
	present.Status = StatusPass
	present.Message = fmt.Sprintf("Found %d Denver KVA Supply Co entr%s", len(denver), plural(len(denver), "y", "ies"))

	return []CheckResult{present, checkDenverConsistency(denver)}
}

func checkDenverConsistency(denver []models.MatchedEntry) CheckResult {
	res := CheckResult{Name: "denver-consistency"}

	var mismatched []string
	for _, e := range denver {
		if e.Name != DenverName || e.Chain != DenverChain {
			mismatched = append(mismatched, fmt.Sprintf("%s: name=%q chain=%q", e.Source, e.Name, e.Chain))
		}
	}
	if len(mismatched) > 0 {
		res.Status = StatusFail
		res.Message = "Denver KVA Supply Co entries are inconsistent"
		res.Details = mismatched
		return res
	}

	entry := denver[0]
	if entry.OperatingName != DenverOperatingName {
		res.Status = StatusWarn
		res.Message = "Denver entry missing 'operatingName' field"
		return res
	}

	res.Status = StatusPass
	res.Message = "Denver KVA Supply Co entry correctly configured"
	res.Details = []string{
		"Name: " + entry.Name,
		"Chain: " + entry.Chain,
		"Operating Name: " + orNA(entry.OperatingName),
		"Phone: " + orNA(entry.Phone),
	}
	if len(denver) > 1 {
		res.Details = append(res.Details, fmt.Sprintf("(Appears in %d files - metro + trade)", len(denver)))
	}
	return res
}

func checkPueblo(entries []models.MatchedEntry) CheckResult {
	res := CheckResult{Name: "pueblo-retained"}
	pueblo := selectAt(entries, PuebloCity, PuebloAddress)

	if len(pueblo) != 1 {
		res.Status = StatusFail
		res.Message = fmt.Sprintf("Expected 1 Pueblo WESCO entry, found %d", len(pueblo))
		return res
	}

	entry := pueblo[0]
	if entry.Chain != PuebloChain {
		res.Status = StatusFail
		res.Message = fmt.Sprintf("Pueblo entry chain is '%s', expected '%s'", entry.Chain, PuebloChain)
		return res
	}

	res.Status = StatusPass
	res.Message = "Pueblo WESCO entry correctly retained"
	res.Details = []string{
		"Name: " + entry.Name,
		"Phone: " + orNA(entry.Phone),
	}
	return res
}

func checkRemoved(entries []models.MatchedEntry, address string) CheckResult {
	res := CheckResult{Name: "removed:" + address, Removal: true}
	for _, e := range entries {
		if strings.Contains(e.Address1, address) {
			res.Status = StatusFail
			res.Message = "Found entry that should have been removed: " + address
			res.Details = append(res.Details, fmt.Sprintf("%s (%s, %s)", e.Source, e.Address1, e.City))
		}
	}
	if res.Status == StatusFail {
		return res
	}
	res.Status = StatusPass
	res.Message = "Confirmed removed: " + address
	return res
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
