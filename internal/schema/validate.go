package schema

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Issue is one problem found in a document.
type Issue struct {
	Table  string
	Column string
	Err    error
}

func (i Issue) String() string {
	switch {
	case i.Column != "":
		return fmt.Sprintf("%s: %v", qualified(i.Table, i.Column), i.Err)
	case i.Table != "":
		return fmt.Sprintf("%s: %v", i.Table, i.Err)
	default:
		return i.Err.Error()
	}
}

// Report is the result of validating one document.
type Report struct {
	Path    string
	Backend string
	Tables  int
	Columns int
	Issues  []Issue
}

// OK reports whether the document has no issues.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// Validate checks every column of doc. Column problems are collected as
// issues; only an unknown backend is returned as an error.
func Validate(doc *Document, defaultBackend string) (*Report, error) {
	b, err := BackendFor(doc, defaultBackend)
	if err != nil {
		return nil, err
	}

	report := &Report{Backend: b.Name(), Tables: len(doc.Tables)}
	for ti, table := range doc.Tables {
		tableName := table.Name
		if tableName == "" {
			tableName = fmt.Sprintf("#%d", ti+1)
			report.Issues = append(report.Issues, Issue{Table: tableName, Err: ErrMissingName})
		}

		seen := make(map[string]struct{}, len(table.Columns))
		for ci, col := range table.Columns {
			report.Columns++

			colName := col.Name
			if colName == "" {
				colName = fmt.Sprintf("#%d", ci+1)
				report.Issues = append(report.Issues, Issue{Table: tableName, Column: colName, Err: ErrMissingName})
			} else if _, dup := seen[colName]; dup {
				report.Issues = append(report.Issues, Issue{Table: tableName, Column: colName, Err: ErrDuplicateColumn})
			}
			seen[colName] = struct{}{}

			if _, err := col.Definition(b); err != nil {
				report.Issues = append(report.Issues, Issue{Table: tableName, Column: colName, Err: err})
			}
		}
	}
	return report, nil
}

// ValidateFiles loads and validates several documents concurrently, at
// most limit at a time. Reports are returned in the order of paths. A file
// that cannot be read or parsed, or targets an unknown backend, aborts the
// run.
func ValidateFiles(ctx context.Context, paths []string, defaultBackend string, limit int, logger *slog.Logger) ([]*Report, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reports := make([]*Report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := Load(path)
			if err != nil {
				return err
			}
			report, err := Validate(doc, defaultBackend)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			report.Path = path
			reports[i] = report

			logger.Debug("validated schema",
				"path", path,
				"backend", report.Backend,
				"columns", report.Columns,
				"issues", len(report.Issues))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
