package cli

import (
	"fmt"
	"time"
)

type Check struct {
	Name    string
	Success bool
	Error   string
}

type Finding struct {
	Page    string
	Message string
	Details []string
}

// CheckReport collects the results of `showcase check` and prints them once.
type CheckReport struct {
	out         *Output
	checks      []Check
	warnings    []Finding
	errors      []Finding
	startTime   time.Time
	pageCount   int
	source      string
	hasFailures bool
	now         func() time.Time
}

func NewCheckReport(out *Output, source string) *CheckReport {
	return &CheckReport{
		out:       out,
		startTime: time.Now(),
		source:    source,
		now:       time.Now,
	}
}

func (r *CheckReport) SetPageCount(count int) {
	r.pageCount = count
}

func (r *CheckReport) Pass(name string) {
	r.checks = append(r.checks, Check{Name: name, Success: true})
}

func (r *CheckReport) Fail(name string, err error) {
	r.checks = append(r.checks, Check{Name: name, Error: err.Error()})
	r.hasFailures = true
}

func (r *CheckReport) AddWarning(page, message string, details []string) {
	r.warnings = append(r.warnings, Finding{Page: page, Message: message, Details: details})
}

func (r *CheckReport) AddError(page, message string, details []string) {
	r.errors = append(r.errors, Finding{Page: page, Message: message, Details: details})
	r.hasFailures = true
}

func (r *CheckReport) HasFailures() bool {
	return r.hasFailures
}

func (r *CheckReport) Render() {
	w := r.out.out
	duration := r.now().Sub(r.startTime)

	fmt.Fprintf(w, "  %d pages found\n", r.pageCount)
	fmt.Fprintln(w)
	for _, check := range r.checks {
		if check.Success {
			fmt.Fprintf(w, "  %s %s\n", r.out.Green("✓"), check.Name)
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", r.out.Red("✗"), check.Name)
		fmt.Fprintf(w, "    %s\n", check.Error)
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(r.out.errOut, "  %sErrors (%d):\n", r.out.Red("✗ "), len(r.errors))
		r.renderFindings(r.errors)
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %sWarnings (%d):\n", r.out.Yellow("⚠ "), len(r.warnings))
		r.renderFindings(r.warnings)
	}

	fmt.Fprintln(w)
	if r.hasFailures {
		fmt.Fprintf(r.out.errOut, "  %s\n", r.out.Red(fmt.Sprintf("Check failed after %s", formatDuration(duration))))
	} else {
		fmt.Fprintf(w, "  %sCheck passed in %s\n", r.out.Green("✓ "), formatDuration(duration))
	}

	if r.source != "" {
		fmt.Fprintf(w, "\n  %s\n", r.out.Gray("Source: "+r.source))
	}
}

func (r *CheckReport) renderFindings(findings []Finding) {
	w := r.out.out
	for _, f := range findings {
		fmt.Fprintf(w, "  %s %s\n", r.out.Red("✗"), f.Page)
		fmt.Fprintf(w, "    %s\n", f.Message)
		for _, detail := range deduplicateStrings(f.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	seen := make(map[string]int)
	var order []string
	for _, item := range items {
		if seen[item] == 0 {
			order = append(order, item)
		}
		seen[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if count := seen[item]; count > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, count))
		} else {
			result = append(result, item)
		}
	}
	return result
}
