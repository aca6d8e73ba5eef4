package billing

import "time"

// PIRecord is one row of the PI account request form.
type PIRecord struct {
	FirstName   string
	LastName    string
	Email       string
	StartDate   time.Time
	StorageTB   float64
	IsPowerUser bool
	SpeedCode   string
}

// UserRecord is one row of the user account request form, or a row
// synthesized from a PI's own account during preprocessing.
type UserRecord struct {
	FirstName   string
	LastName    string
	Email       string
	PILastName  string
	StartDate   time.Time
	PowerUser   bool
	SpeedCode   string // empty until resolved against the sponsoring PI
	Synthesized bool
}

type PITable []PIRecord

type UserTable []UserRecord

// ChargeLine is a single billable item on a quarterly bill.
type ChargeLine struct {
	Description    string
	StartDate      time.Time
	AnnualPrice    float64
	QuarterlyPrice float64
	SpeedCode      string
}

// CodeGroup collects the charge lines billed to one speed code.
type CodeGroup struct {
	SpeedCode string
	Lines     []ChargeLine
}

// Subtotal sums the quarterly prices of the group's lines.
func (g CodeGroup) Subtotal() float64 {
	var sum float64
	for _, ln := range g.Lines {
		sum += ln.QuarterlyPrice
	}
	return sum
}

// Bill is the quarterly bill for one PI. It is assembled once per
// (PI, quarter) query and read-only afterwards.
//
// Storage is nil when the PI's storage started after the quarter end;
// that quarter has no storage charge at all, not a zero line.
type Bill struct {
	PILastName string
	QuarterEnd time.Time
	StorageTB  float64
	Storage    *ChargeLine
	PowerUsers []ChargeLine
	Groups     []CodeGroup // storage code first, then first-seen order
}

// Total sums the quarterly prices of every charge line on the bill.
func (b *Bill) Total() float64 {
	var total float64
	if b.Storage != nil {
		total += b.Storage.QuarterlyPrice
	}
	for _, ln := range b.PowerUsers {
		total += ln.QuarterlyPrice
	}
	return total
}
