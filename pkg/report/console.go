package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"branchaudit/pkg/branches"
	"branchaudit/pkg/verifier"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 80

// Console renders a verification result as a sectioned, human-readable report.
// Colours are only emitted when the writer is a terminal.
type Console struct {
	w io.Writer

	header lipgloss.Style
	file   lipgloss.Style
	muted  lipgloss.Style
	pass   lipgloss.Style
	fail   lipgloss.Style
	warn   lipgloss.Style
	skip   lipgloss.Style
}

// NewConsole creates a console report bound to w
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:      w,
		header: r.NewStyle().Bold(true),
		file:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		pass:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#3FB950")),
		fail:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		warn:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E3B341")),
		skip:   r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
	}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.w, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.w, format, a...)
}

func (c *Console) rule() {
	c.println(strings.Repeat("=", ruleWidth))
}

func (c *Console) section(title string) {
	c.rule()
	c.println(c.header.Render(title))
	c.rule()
}

// Render writes the whole report: per-file listings, summary, checks and the
// final banner.
func (c *Console) Render(result *verifier.Result) {
	c.section("WESCO CLEANUP VERIFICATION")
	c.println()

	c.renderFiles(result.Scan)
	c.renderSummary(result)
	c.renderChecks(result.Checks)
	c.renderCounts(result.Counts())
	c.renderBanner(result.Success())
}

func (c *Console) renderFiles(scan *verifier.Scan) {
	for _, f := range scan.Files {
		c.println("📁 " + c.file.Render(f.Source))
		c.printf("   Total branches: %d\n", f.TotalBranches)
		c.printf("   WESCO/KVA entries: %d\n", len(f.Matches))
		for _, e := range f.Matches {
			c.printf("   └─ %s\n", e.Name)
			c.printf("      Chain: %s\n", e.Chain)
			c.printf("      Address: %s, %s\n", e.Address1, e.City)
		}
		c.println()
	}
}

func (c *Console) renderSummary(result *verifier.Result) {
	c.section("SUMMARY")
	c.printf("Total branches scanned: %d\n", result.Scan.TotalBranches)
	c.printf("Total WESCO/KVA entries found: %d\n", len(result.Scan.Entries))
	c.println()
	c.printf("Unique WESCO/KVA locations: %d\n", len(result.Unique))
	c.println()
}

func (c *Console) renderChecks(checks []verifier.CheckResult) {
	removalHeader := false
	for _, chk := range checks {
		if chk.Removal && !removalHeader {
			c.println()
			c.println("Checking for removed entries...")
			removalHeader = true
		}
		c.renderCheck(chk)
	}
	c.println()
}

func (c *Console) renderCheck(chk verifier.CheckResult) {
	if chk.Quiet && chk.Status == verifier.StatusPass {
		return
	}
	switch chk.Status {
	case verifier.StatusPass:
		c.println("✅ " + c.pass.Render("PASS:") + " " + chk.Message)
	case verifier.StatusFail:
		c.println("❌ " + c.fail.Render("FAIL:") + " " + chk.Message)
	case verifier.StatusWarn:
		c.println("⚠️  " + c.warn.Render("WARNING:") + " " + chk.Message)
	default:
		c.println("➖ " + c.skip.Render("SKIP:") + " " + chk.Message)
	}
	for _, d := range chk.Details {
		c.println("   " + c.muted.Render(d))
	}
}

func (c *Console) renderCounts(counts map[verifier.Status]int) {
	total := 0
	for _, n := range counts {
		total += n
	}
	c.printf("Checks run: %d (%d passed, %d failed, %d warnings, %d skipped)\n",
		total,
		counts[verifier.StatusPass],
		counts[verifier.StatusFail],
		counts[verifier.StatusWarn],
		counts[verifier.StatusSkip],
	)
	c.println()
}

func (c *Console) renderBanner(success bool) {
	c.rule()
	if success {
		c.println("✅ " + c.pass.Render("ALL CHECKS PASSED"))
		c.println()
		c.println("The WESCO cleanup has been successfully completed!")
		c.printf("Only %d verified WESCO locations remain:\n", len(verifier.RemainingLocations))
		for i, loc := range verifier.RemainingLocations {
			c.printf("  %d. %s\n", i+1, loc)
		}
	} else {
		c.println("❌ " + c.fail.Render("SOME CHECKS FAILED"))
		c.println()
		c.println("Please review the errors above and correct the data files.")
	}
	c.rule()
}

// RenderAbort reports an error that stopped the run before any check executed.
// Missing data gets a hint about the working directory.
func (c *Console) RenderAbort(err error, baseDir string) {
	c.println("❌ " + c.fail.Render("Error:") + " " + err.Error())
	if errors.Is(err, branches.ErrBaseDirNotFound) || errors.Is(err, verifier.ErrNoInputFiles) {
		c.printf("   Expected listing files under %s\n", baseDir)
		c.println("   Make sure you're running this from the Price-Cal repository root")
	}
}
