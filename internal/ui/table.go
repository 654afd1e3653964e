package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"pkgscout/internal/tracker"
	"pkgscout/pkg/distro"
	"pkgscout/pkg/rank"
)

// Table buffers rows and renders them through tabwriter so that the header
// always comes out above the body.
type Table struct {
	out     io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a new table writing to stdout.
func NewTable(headers []string) *Table {
	return NewTableWriter(os.Stdout, headers)
}

// NewTableWriter creates a new table that writes to a specific writer.
func NewTableWriter(w io.Writer, headers []string) *Table {
	return &Table{
		out:     w,
		headers: headers,
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Len returns the number of rows added so far.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render outputs the table.
func (t *Table) Render() {
	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)

	if len(t.headers) > 0 {
		cols := make([]string, len(t.headers))
		for i, h := range t.headers {
			cols[i] = Bold(strings.ToUpper(h))
		}
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}

	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush()
}

// PrintCandidates prints ranked search results in a numbered table.
func PrintCandidates(candidates []rank.Candidate) {
	if len(candidates) == 0 {
		MutedMsg("No packages found")
		return
	}

	t := NewTable([]string{"#", "name", "source", "score", "description"})
	for i, c := range candidates {
		t.AddRow(
			strconv.Itoa(i+1),
			PackageName.Sprint(c.Record.Name),
			SourceTag(c.Record.Source),
			strconv.Itoa(c.Score),
			truncate(c.Record.Description, 50),
		)
	}
	t.Render()
}

// PrintInstalls prints tracked installs, newest first.
func PrintInstalls(installs []tracker.Install) {
	if len(installs) == 0 {
		MutedMsg("No tracked installs")
		return
	}

	t := NewTable([]string{"name", "version", "source", "installed", "via"})
	for _, in := range installs {
		t.AddRow(
			PackageName.Sprint(in.Name),
			PackageVersion.Sprint(orDash(in.Version)),
			SourceTag(in.Source),
			in.InstalledAt.Format("2006-01-02 15:04:05"),
			Muted.Sprint(orDash(in.Via)),
		)
	}
	t.Render()
}

// PrintUpdates prints the update checker's verdict per tracked install.
func PrintUpdates(updates []tracker.Update) {
	if len(updates) == 0 {
		MutedMsg("No tracked installs to check")
		return
	}

	t := NewTable([]string{"name", "source", "installed", "available", "status"})
	for _, u := range updates {
		t.AddRow(
			PackageName.Sprint(u.Install.Name),
			SourceTag(u.Install.Source),
			orDash(u.Install.Version),
			orDash(u.Available),
			statusLabel(u.Status),
		)
	}
	t.Render()
}

func statusLabel(status tracker.UpdateStatus) string {
	switch status {
	case tracker.UpdateAvailable:
		return Yellow(status.String())
	case tracker.UpToDate:
		return Green(status.String())
	}
	return Muted.Sprint(status.String())
}

// PrintDistro prints the detected distribution summary.
func PrintDistro(info *distro.Info) {
	HeaderMsg("System")

	name := info.PrettyName
	if name == "" {
		name = info.Name
	}
	family := info.Family()

	printField("Distribution", orDash(name))
	printField("Family", string(family))
	printField("Native source", orDash(family.NativeSource()))
	printField("Search order", strings.Join(family.Sources(), ", "))
}

// printField prints a single field with formatting.
func printField(label, value string) {
	fmt.Printf("  %s: %s\n", Cyan(label), value)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
