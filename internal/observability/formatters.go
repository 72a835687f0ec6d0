package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/wingkam/jobradar/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnnotation outputs a human-readable summary of an annotated job.
func (p *Printer) PrintAnnotation(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString("\n")

	ann := job.Annotation
	if len(ann.TechStack) > 0 {
		sb.WriteString("Tech stack:\n")
		count := min(len(ann.TechStack), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", ann.TechStack[i]))
		}
		if len(ann.TechStack) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(ann.TechStack)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if ann.YearsOfExperience != nil {
		sb.WriteString(fmt.Sprintf("Experience: %d+ years\n", *ann.YearsOfExperience))
	}
	if ann.Salary != nil {
		sb.WriteString(fmt.Sprintf("Salary:     %d-%d %s\n", ann.Salary.Min, ann.Salary.Max, ann.Salary.Currency))
	}
	sb.WriteString(fmt.Sprintf("Visa:       %s\n", ann.VisaSponsorship))
	sb.WriteString(fmt.Sprintf("Location:   %s", ann.LocationType))
	if ann.District != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", ann.District))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Industry:   %s", ann.Industry))

	p.printBox("ANNOTATED JOB", sb.String())
}

// PrintIngestResult outputs the counters from one pipeline run.
func (p *Printer) PrintIngestResult(source string, fetched, created, updated, skipped int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n\n", source))
	sb.WriteString(fmt.Sprintf("Fetched:  %d\n", fetched))
	sb.WriteString(fmt.Sprintf("Created:  %d\n", created))
	sb.WriteString(fmt.Sprintf("Updated:  %d\n", updated))
	sb.WriteString(fmt.Sprintf("Skipped:  %d", skipped))

	p.printBox("INGEST RUN", sb.String())
}
