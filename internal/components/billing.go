package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/licensedesk/licensedesk/internal/license"
	"github.com/licensedesk/licensedesk/internal/ui"
)

// BillingPanel shows the upgrade estimate next to the license table
type BillingPanel struct {
	billing     license.Billing
	addLicenses int
	theme       *ui.Theme
}

func NewBillingPanel(billing license.Billing, theme *ui.Theme) *BillingPanel {
	return &BillingPanel{billing: billing, theme: theme}
}

func (b *BillingPanel) SetTheme(theme *ui.Theme) {
	b.theme = theme
}

func (b *BillingPanel) SetAddLicenses(n int) {
	b.addLicenses = n
}

func (b *BillingPanel) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(b.theme.Muted)
	valueStyle := lipgloss.NewStyle().Foreground(b.theme.Foreground)
	totalStyle := lipgloss.NewStyle().Foreground(b.theme.Primary).Bold(true)

	lines := []struct {
		label, value string
	}{
		{"Add licenses", fmt.Sprintf("%d", b.addLicenses)},
		{"Total licenses", fmt.Sprintf("%d", b.billing.TotalLicenses)},
		{"Allocated", fmt.Sprintf("%d", b.billing.Allocated)},
		{"Unallocated", fmt.Sprintf("%d", b.billing.Unallocated)},
		{"Rate per user", b.billing.RatePerUser},
		{"Sub total", b.billing.SubTotal},
		{"Total tax", b.billing.TotalTax},
		{"Discount", b.billing.Discount},
	}

	var sb strings.Builder
	sb.WriteString(b.theme.Header.Render("Billing Estimate"))
	sb.WriteString("\n")
	for _, l := range lines {
		fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-15s", l.label)), valueStyle.Render(l.value))
	}
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-15s", "Gross total")), totalStyle.Render(b.billing.GrossTotal))
	sb.WriteString(labelStyle.Render("Renews " + b.billing.RenewalDate))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(b.theme.Border).
		Padding(0, 1).
		Render(sb.String())
}
