// Package license holds the static license rows and billing figures shown
// on the management screen, and exports them.
package license

// Row is one license line in the table.
type Row struct {
	ID        int
	Product   string
	Company   string
	Scope     string
	Type      string
	Total     int
	Perpetual int
	Expiry    string
	Currency  string
	Billing   string
	Status    string
}

// Billing is the estimate panel shown next to the upgrade form.
type Billing struct {
	TotalLicenses int
	Allocated     int
	Unallocated   int
	RatePerUser   string
	SubTotal      string
	TotalTax      string
	Discount      string
	GrossTotal    string
	Currency      string
	RenewalDate   string
}

// DefaultAddLicenses is the preset quantity in the upgrade form.
const DefaultAddLicenses = 2

const product = "Sales Automation Tool - SAT"

func row(id int, company string, total, perpetual int) Row {
	return Row{
		ID:        id,
		Product:   product,
		Company:   company,
		Scope:     "All Users",
		Type:      "Billable Licenses",
		Total:     total,
		Perpetual: perpetual,
		Expiry:    "--",
		Currency:  "KES",
		Billing:   "Per Month",
		Status:    "ACTIVE",
	}
}

// Rows returns the license table contents.
func Rows() []Row {
	return []Row{
		row(1, "SOLUTECH SAT", 200, 150),
		row(5, "SIRAI LIMITED", 10, 10),
		row(11, "Sasini PLC", 200, 200),
		row(12, "SUMMER ERP", 10, 10),
	}
}

// RowCount is the number of rows the selector can move over.
func RowCount() int {
	return len(Rows())
}

// Summary returns the billing figures.
func Summary() Billing {
	return Billing{
		TotalLicenses: 200,
		Allocated:     44,
		Unallocated:   156,
		RatePerUser:   "1,548.38 KES",
		SubTotal:      "211,819.35 KES",
		TotalTax:      "0 KES",
		Discount:      "0 KES",
		GrossTotal:    "211,819.35 KES",
		Currency:      "KES",
		RenewalDate:   "8th July, 2025",
	}
}

// Tabs lists the tab ids in display order.
var Tabs = []string{"upgrade", "downgrade", "details", "history"}
