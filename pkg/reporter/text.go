package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/okralabs/bulletlint/internal/ui/pretty"
	"github.com/okralabs/bulletlint/pkg/mdast"
	"github.com/okralabs/bulletlint/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var totalIssues int
	if r.opts.GroupByFile {
		totalIssues = r.reportGrouped(ctx, result)
	} else {
		totalIssues = r.reportFlat(ctx, result)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return totalIssues, nil
}

// reportGrouped writes diagnostics grouped by file.
func (r *TextReporter) reportGrouped(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.writeFileError(file)
			continue
		}

		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		diagnostics := file.Result.Diagnostics
		if len(diagnostics) == 0 {
			continue
		}

		path := displayPath(file.Path, r.opts.WorkingDir)
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(diagnostics)))

		for _, diag := range diagnostics {
			var sourceLine string
			if r.opts.ShowContext {
				sourceLine = sourceLineAt(file.Result.Snapshot, diag.StartLine)
			}

			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, r.opts.ShowContext, sourceLine))
			total++
		}

		// Blank line between files.
		fmt.Fprintln(r.bw)
	}

	return total
}

// reportFlat writes diagnostics without grouping.
func (r *TextReporter) reportFlat(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.writeFileError(file)
			continue
		}

		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		for _, diag := range file.Result.Diagnostics {
			var sourceLine string
			if r.opts.ShowContext {
				sourceLine = sourceLineAt(file.Result.Snapshot, diag.StartLine)
			}

			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, r.opts.ShowContext, sourceLine))
			total++
		}
	}

	return total
}

// writeFileError reports a per-file processing error.
func (r *TextReporter) writeFileError(file runner.FileOutcome) {
	fmt.Fprintf(r.bw, "%s: %s\n",
		r.styles.FilePath.Render(displayPath(file.Path, r.opts.WorkingDir)),
		r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
	)
}

// sourceLineAt extracts a line from the snapshot's pre-computed line index.
func sourceLineAt(snapshot *mdast.FileSnapshot, lineNum int) string {
	if snapshot == nil {
		return ""
	}
	content := snapshot.LineContent(lineNum)
	if content == nil {
		return ""
	}
	return string(content)
}
