package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/roster/internal/engine"
)

// Table column widths.
const (
	colWidthName   = 24
	colWidthGender = 8
	colWidthAge    = 5
	colWidthEmail  = 32
)

// sortIndicator returns the arrow suffix for the active sort column.
func sortIndicator(active bool, dir engine.Direction) string {
	if !active {
		return ""
	}
	if dir == engine.Descending {
		return " ▼"
	}
	return " ▲"
}

// newUserTable creates the table model for one page of records. The
// active sort column carries a direction arrow in its title.
func newUserTable(page []engine.Record, key engine.SortKey, dir engine.Direction) table.Model {
	columns := []table.Column{
		{Title: "Name" + sortIndicator(key == engine.SortByFirstName, dir), Width: colWidthName},
		{Title: "Gender" + sortIndicator(key == engine.SortByGender, dir), Width: colWidthGender},
		{Title: "Age" + sortIndicator(key == engine.SortByAge, dir), Width: colWidthAge},
		{Title: "Email" + sortIndicator(key == engine.SortByEmail, dir), Width: colWidthEmail},
	}

	rows := make([]table.Row, len(page))
	for i, r := range page {
		rows[i] = table.Row{
			r.FullName(),
			r.Gender,
			strconv.Itoa(r.DOB.Age),
			r.Email,
		}
	}

	height := len(rows)
	if height < minTableRows {
		height = minTableRows
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// renderErrorView renders the failed-fetch banner.
func renderErrorView(message string) string {
	box := BoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		ErrorStyle.Render("Failed to load users"),
		LabelStyle.Render("Reason: ")+ValueStyle.Render(message),
	))
	help := SubtleStyle.Render("[q] Quit")
	return lipgloss.JoinVertical(lipgloss.Left, "", box, "", help)
}

// renderStatusBar summarizes pagination and filter state under the table.
func renderStatusBar(result engine.Result, query string, totalRecords int) string {
	status := fmt.Sprintf("Page %d of %d · %d of %d users",
		result.Meta.CurrentPage, result.Meta.TotalPages,
		result.FilteredCount, totalRecords)
	if query != "" {
		status += fmt.Sprintf(" · filter: %q", query)
	}
	return InfoStyle.Render(status)
}

// renderListView renders the main table screen.
func (m *BrowseModel) renderListView() string {
	header := HeaderStyle.Render("USER DIRECTORY")

	tableView := m.table.View()
	if m.result.FilteredCount == 0 {
		tableView = SubtleStyle.Render("No users match the current search.")
	}

	status := renderStatusBar(m.result, m.view.DebouncedQuery(), len(m.records))
	help := SubtleStyle.Render(
		"[/] Search  [1-4] Sort column  [←→/hl] Page  [esc] Clear  [q] Quit")

	if m.searching {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			tableView,
			"\nSearch: "+m.textInput.View(),
			status,
			help,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, tableView, status, help)
}
