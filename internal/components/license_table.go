package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/licensedesk/licensedesk/internal/license"
	"github.com/licensedesk/licensedesk/internal/ui"
)

var licenseColumns = []table.Column{
	{Title: "ID", Width: 4},
	{Title: "Product", Width: 28},
	{Title: "Company", Width: 14},
	{Title: "Type", Width: 18},
	{Title: "Total", Width: 6},
	{Title: "Perpetual", Width: 9},
	{Title: "Expiry", Width: 6},
	{Title: "Billing", Width: 10},
	{Title: "Status", Width: 7},
}

// LicenseTable shows the license rows. Row selection is driven by the
// dispatcher, the table never reads keys itself.
type LicenseTable struct {
	table table.Model
	theme *ui.Theme
}

func NewLicenseTable(rows []license.Row, theme *ui.Theme) *LicenseTable {
	t := table.New(
		table.WithColumns(licenseColumns),
		table.WithRows(toTableRows(rows)),
		table.WithHeight(len(rows)+1),
		table.WithFocused(true),
		table.WithStyles(theme.ToTableStyles()),
	)
	return &LicenseTable{table: t, theme: theme}
}

func toTableRows(rows []license.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{
			strconv.Itoa(r.ID),
			r.Product,
			r.Company,
			r.Type,
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Perpetual),
			r.Expiry,
			r.Billing,
			r.Status,
		})
	}
	return out
}

func (lt *LicenseTable) SetTheme(theme *ui.Theme) {
	lt.theme = theme
	lt.table.SetStyles(theme.ToTableStyles())
}

func (lt *LicenseTable) SetWidth(width int) {
	lt.table.SetWidth(width)
}

// SetSelected moves the highlighted row
func (lt *LicenseTable) SetSelected(i int) {
	lt.table.SetCursor(i)
}

func (lt *LicenseTable) Selected() int {
	return lt.table.Cursor()
}

func (lt *LicenseTable) View() string {
	return lt.table.View()
}
