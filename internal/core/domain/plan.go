package domain

// PlanRow is one line of the reviewable download plan.
type PlanRow struct {
	// Name is the package display name.
	Name string

	// FileName is the resolved file to download.
	FileName string

	// CustomPath is the install path override, empty for the default.
	CustomPath string

	// ProviderName is the provider's display name.
	ProviderName string

	// RequiredBy lists the display names of selections that require this one.
	RequiredBy []string

	// AutoResolved is true when the entry was added by dependency resolution
	// rather than picked explicitly by the user.
	AutoResolved bool
}

// DownloadPlan is the ordered download plan handed to the reviewer. Rows are
// sorted by package name, case-insensitive, ascending. Plans are built fresh
// for each confirmation attempt and never persisted.
type DownloadPlan struct {
	Rows []PlanRow

	// Fingerprint is a digest of the selection snapshot the plan was built
	// from, used to detect drift between planning and acceptance.
	Fingerprint uint64
}

// Names returns the package names of all rows in plan order.
func (p DownloadPlan) Names() []string {
	names := make([]string, len(p.Rows))
	for i, row := range p.Rows {
		names[i] = row.Name
	}
	return names
}

// ReviewDecision is the reviewer's verdict on a download plan.
type ReviewDecision struct {
	// Accepted is false when the user cancelled the review. A cancelled
	// review leaves the selection store untouched.
	Accepted bool

	// Deselected holds package names the user unchecked during review. Only
	// meaningful when Accepted is true.
	Deselected []string
}
