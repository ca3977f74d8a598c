// Package report renders validation and audit results as terminal text,
// markdown, or JSON. Layouts match the reports the companion's tooling
// has always produced, so diffs against archived reports stay readable.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	cardkit "github.com/opd-ai/cardkit-go"
)

const ruleWidth = 80

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnMark = color.New(color.FgYellow).Sprint("⚠")
)

// marks returns the glyph set, colored only when the output is a
// terminal the caller wants colored.
func marks(colored bool) (ok, fail, warn string) {
	if colored {
		return okMark, failMark, warnMark
	}
	return "✓", "✗", "⚠"
}

// Validation renders the full validation report for a corpus.
func Validation(results []*cardkit.ValidationResult, colored bool) string {
	ok, fail, warn := marks(colored)

	validCount := 0
	for _, r := range results {
		if r.Valid {
			validCount++
		}
	}
	total := len(results)

	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)
	sep := strings.Repeat("-", 40)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "CHARACTER VALIDATION REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Total Characters: %d\n", total)
	fmt.Fprintf(&b, "Valid Characters: %d\n", validCount)
	fmt.Fprintf(&b, "Invalid Characters: %d\n", total-validCount)
	if total > 0 {
		fmt.Fprintf(&b, "Validation Success Rate: %.1f%%\n", float64(validCount)/float64(total)*100)
	}
	fmt.Fprintln(&b)

	if validCount > 0 {
		fmt.Fprintln(&b, "VALID CHARACTERS")
		fmt.Fprintln(&b, sep)
		for _, r := range results {
			if !r.Valid {
				continue
			}
			fmt.Fprintf(&b, "%s %s\n", ok, r.Character)
			for _, w := range r.Warnings {
				fmt.Fprintf(&b, "  %s %s\n", warn, w)
			}
		}
		fmt.Fprintln(&b)
	}

	if total-validCount > 0 {
		fmt.Fprintln(&b, "INVALID CHARACTERS")
		fmt.Fprintln(&b, sep)
		for _, r := range results {
			if r.Valid {
				continue
			}
			fmt.Fprintf(&b, "%s %s\n", fail, r.Character)
			for _, e := range r.Errors {
				fmt.Fprintf(&b, "  %s %s\n", fail, e)
			}
			for _, w := range r.Warnings {
				fmt.Fprintf(&b, "  %s %s\n", warn, w)
			}
			fmt.Fprintln(&b)
		}
	}

	var allErrors, allWarnings []string
	for _, r := range results {
		allErrors = append(allErrors, r.Errors...)
		allWarnings = append(allWarnings, r.Warnings...)
	}
	writeSummary(&b, "ERROR SUMMARY", allErrors)
	writeSummary(&b, "WARNING SUMMARY", allWarnings)

	fmt.Fprintln(&b, rule)
	return b.String()
}

// writeSummary groups findings by their message prefix (the part before
// the first colon) and lists occurrence counts, most frequent first.
func writeSummary(b *strings.Builder, title string, findings []string) {
	if len(findings) == 0 {
		return
	}
	counts := make(map[string]int)
	for _, f := range findings {
		key := f
		if i := strings.Index(f, ":"); i >= 0 {
			key = f[:i]
		}
		counts[key]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	fmt.Fprintln(b, title)
	fmt.Fprintln(b, strings.Repeat("-", 40))
	for _, k := range keys {
		fmt.Fprintf(b, "%s: %d occurrences\n", k, counts[k])
	}
	fmt.Fprintln(b)
}

// ValidationMarkdown wraps the plain report in a fenced block for
// saving next to the corpus.
func ValidationMarkdown(results []*cardkit.ValidationResult) string {
	return "# Character Validation Report\n\n```\n" + Validation(results, false) + "\n```\n"
}

// WriteJSON emits results for machine consumption.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
