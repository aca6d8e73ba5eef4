package billing

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const dateLayout = "2006-01-02"

// Render writes the bill's text report to w. Rendering reads the bill
// and nothing else; the same bill always renders to the same bytes.
func (b *Bill) Render(w io.Writer) error {
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the report text: a header naming the PI, the storage
// line with its speed code subtotal, one line per power user grouped by
// speed code with per-code subtotals, and the grand total. A speed code
// with no power user lines still gets its $0.00 subtotal line in the
// Power Users section.
func (b *Bill) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Billing report for %s\n", b.PILastName)
	sb.WriteString("Storage\n")
	if b.Storage != nil {
		fmt.Fprintf(&sb, "Start: %s, Size: %s TB, Annual price per TB: $%.2f, Quarterly Price: $%.2f\n",
			b.Storage.StartDate.Format(dateLayout),
			strconv.FormatFloat(b.StorageTB, 'f', -1, 64),
			b.Storage.AnnualPrice,
			b.Storage.QuarterlyPrice)
		fmt.Fprintf(&sb, "Speed code: %s, Subtotal: $%.2f\n",
			b.Storage.SpeedCode, b.Storage.QuarterlyPrice)
	}

	sb.WriteString("Power Users\n")
	for _, g := range b.Groups {
		var subtotal float64
		for _, ln := range b.PowerUsers {
			if ln.SpeedCode != g.SpeedCode {
				continue
			}
			fmt.Fprintf(&sb, "Name: %s, Start: %s, Annual price: $%.2f, Quarterly price: $%.2f\n",
				ln.Description,
				ln.StartDate.Format(dateLayout),
				ln.AnnualPrice,
				ln.QuarterlyPrice)
			subtotal += ln.QuarterlyPrice
		}
		fmt.Fprintf(&sb, "Speed code: %s, Subtotal: $%.2f\n", g.SpeedCode, subtotal)
	}

	fmt.Fprintf(&sb, "Total: $%.2f\n", b.Total())
	return sb.String()
}
