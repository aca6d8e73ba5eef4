package billing

import (
	"fmt"
	"time"
)

// AssembleBill computes the quarterly bill for one PI.
//
// The tables must already have gone through Preprocess: PI rows folded
// into the user table and speed codes resolved. Power user seats are
// numbered in table order, counting only rows that are billable this
// quarter; a user starting after quarter end never enters the seat
// sequence.
func AssembleBill(pricing Pricing, pis PITable, users UserTable, piLastName string, quarterEnd time.Time) (*Bill, error) {
	pi, err := findPI(pis, piLastName)
	if err != nil {
		return nil, err
	}

	bill := &Bill{
		PILastName: pi.LastName,
		QuarterEnd: midnight(quarterEnd),
		StorageTB:  pi.StorageTB,
	}

	if Billable(pi.StartDate, quarterEnd) {
		bill.Storage = &ChargeLine{
			Description:    "Storage",
			StartDate:      midnight(pi.StartDate),
			AnnualPrice:    pricing.StoragePricePerTB,
			QuarterlyPrice: ProrateQuarterly(pi.StorageTB*pricing.StoragePricePerTB, pi.StartDate, quarterEnd),
			SpeedCode:      pi.SpeedCode,
		}
	}

	seat := 0
	for _, u := range users {
		if u.PILastName != pi.LastName || !u.PowerUser {
			continue
		}
		if !Billable(u.StartDate, quarterEnd) {
			continue
		}
		annual, err := pricing.UserPriceByIndex(seat)
		if err != nil {
			return nil, err
		}
		bill.PowerUsers = append(bill.PowerUsers, ChargeLine{
			Description:    u.FirstName,
			StartDate:      midnight(u.StartDate),
			AnnualPrice:    annual,
			QuarterlyPrice: ProrateQuarterly(annual, u.StartDate, quarterEnd),
			SpeedCode:      u.SpeedCode,
		})
		seat++
	}

	bill.Groups = groupByCode(bill)
	return bill, nil
}

func findPI(pis PITable, lastName string) (PIRecord, error) {
	var found PIRecord
	matches := 0
	for _, pi := range pis {
		if pi.LastName == lastName {
			found = pi
			matches++
		}
	}
	switch {
	case matches == 0:
		return PIRecord{}, fmt.Errorf("%w: %q", ErrPINotFound, lastName)
	case matches > 1:
		return PIRecord{}, fmt.Errorf("%w: %q", ErrDuplicatePI, lastName)
	}
	return found, nil
}

// groupByCode buckets every charge line on the bill by speed code. The
// storage code comes first, then codes in the order the power user
// lines introduce them. Subtotals over the groups always sum to the
// bill total.
func groupByCode(b *Bill) []CodeGroup {
	var order []string
	byCode := make(map[string][]ChargeLine)
	add := func(ln ChargeLine) {
		if _, ok := byCode[ln.SpeedCode]; !ok {
			order = append(order, ln.SpeedCode)
		}
		byCode[ln.SpeedCode] = append(byCode[ln.SpeedCode], ln)
	}

	if b.Storage != nil {
		add(*b.Storage)
	}
	for _, ln := range b.PowerUsers {
		add(ln)
	}

	groups := make([]CodeGroup, 0, len(order))
	for _, code := range order {
		groups = append(groups, CodeGroup{SpeedCode: code, Lines: byCode[code]})
	}
	return groups
}
