package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rshade/roster/internal/engine"
	"github.com/rshade/roster/internal/logging"
	"github.com/rshade/roster/internal/tui"
)

// Plain table column widths.
const (
	plainColName   = 24
	plainColGender = 8
	plainColAge    = 5
)

// staticOptions carries the non-interactive view parameters.
type staticOptions struct {
	query    string
	sortExpr string
	page     int
	output   string
}

// runStatic fetches the batch once, runs the same derived pipeline the TUI
// uses, and prints a single page to w.
func runStatic(
	ctx context.Context,
	w io.Writer,
	fetcher tui.UserFetcher,
	pageSize int,
	opts staticOptions,
) error {
	log := logging.FromContext(ctx)

	records, err := fetcher(ctx)
	if err != nil {
		return fmt.Errorf("loading users: %w", err)
	}

	view := engine.NewView(pageSize)

	if opts.query != "" {
		// No keystrokes to collapse here, so the query commits directly.
		gen := view.SetQuery(opts.query)
		view.CommitQuery(gen)
	}

	if opts.sortExpr != "" {
		key, dir, sortErr := ParseSortExpression(opts.sortExpr)
		if sortErr != nil {
			return sortErr
		}
		// The expression carries the direction, so the reselection toggle
		// does not apply here.
		view.SetSortOrder(key, dir)
	}

	first := view.Apply(records)
	view.SetPage(opts.page, first.Meta.TotalPages)
	result := view.Apply(records)

	log.Debug().
		Str("operation", "static_render").
		Int("records", len(records)).
		Int("filtered", result.FilteredCount).
		Int("page", result.Meta.CurrentPage).
		Msg("rendering static page")

	if opts.output == "json" {
		return renderJSON(w, result)
	}
	return renderPlainTable(w, result)
}

// pageDocument is the JSON output shape.
type pageDocument struct {
	Users      []engine.Record `json:"users"`
	Pagination engine.PageMeta `json:"pagination"`
}

// renderJSON writes the page as indented JSON.
func renderJSON(w io.Writer, result engine.Result) error {
	doc := pageDocument{Users: result.Page, Pagination: result.Meta}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// renderPlainTable writes the page as a fixed-width text table.
func renderPlainTable(w io.Writer, result engine.Result) error {
	if result.FilteredCount == 0 {
		_, err := fmt.Fprintln(w, "No users match the current search.")
		return err
	}

	if _, err := fmt.Fprintf(w, "%-*s  %-*s  %*s  %s\n",
		plainColName, "NAME",
		plainColGender, "GENDER",
		plainColAge, "AGE",
		"EMAIL"); err != nil {
		return err
	}

	for _, r := range result.Page {
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %*d  %s\n",
			plainColName, r.FullName(),
			plainColGender, r.Gender,
			plainColAge, r.DOB.Age,
			r.Email); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nPage %d of %d (%d users)\n",
		result.Meta.CurrentPage, result.Meta.TotalPages, result.Meta.TotalItems)
	return err
}
