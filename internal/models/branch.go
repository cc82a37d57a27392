package models

// BranchRecord is one entry from a listing file's branches array.
// Optional fields decode to the empty string when absent.
type BranchRecord struct {
	Name          string `json:"name"`
	Chain         string `json:"chain"`
	City          string `json:"city"`
	Address1      string `json:"address1"`
	Phone         string `json:"phone,omitempty"`
	LastVerified  string `json:"last_verified,omitempty"`
	OperatingName string `json:"operatingName,omitempty"`
}

// BranchFile is the top-level shape of a regional listing file
type BranchFile struct {
	Branches []BranchRecord `json:"branches"`
}

// MatchedEntry is a branch that passed the vendor filter, tagged with the
// file it came from.
type MatchedEntry struct {
	BranchRecord
	Source string `json:"file"`
}

// LocationKey identifies the physical location of an entry. The same branch
// can appear in both a metro file and a trade-specific file.
func (e MatchedEntry) LocationKey() string {
	return e.City + "-" + e.Address1
}
