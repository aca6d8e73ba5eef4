package billing

import "fmt"

// Preprocess canonicalizes freshly loaded form tables.
//
// Every PI is folded into the user table as one synthesized row
// appended after the explicit user rows, in PI table order, so a PI who
// requested a power user account occupies a seat in their own seat
// sequence. Blank user speed codes are resolved to the sponsoring PI's
// default code. Input order is otherwise preserved, and the combined
// order is what later assigns power user seat indices.
//
// The inputs are not mutated; calling Preprocess twice with the same
// tables yields the same result.
func Preprocess(pis PITable, users UserTable) (PITable, UserTable, error) {
	byLastName, err := piIndex(pis)
	if err != nil {
		return nil, nil, err
	}

	out := make(UserTable, 0, len(users)+len(pis))
	for _, u := range users {
		pi, ok := byLastName[u.PILastName]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q (user %s %s)",
				ErrUnknownPI, u.PILastName, u.FirstName, u.LastName)
		}
		if u.SpeedCode == "" {
			u.SpeedCode = pi.SpeedCode
		}
		out = append(out, u)
	}
	for _, pi := range pis {
		out = append(out, UserRecord{
			FirstName:   pi.FirstName,
			LastName:    pi.LastName,
			Email:       pi.Email,
			PILastName:  pi.LastName,
			StartDate:   pi.StartDate,
			PowerUser:   pi.IsPowerUser,
			SpeedCode:   pi.SpeedCode,
			Synthesized: true,
		})
	}
	return pis, out, nil
}

// piIndex builds the surname lookup used to join user rows to PIs.
// Surnames are the only join key the forms provide, so a duplicate is a
// hard error rather than a silent first-match.
func piIndex(pis PITable) (map[string]PIRecord, error) {
	idx := make(map[string]PIRecord, len(pis))
	for _, pi := range pis {
		if _, dup := idx[pi.LastName]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePI, pi.LastName)
		}
		idx[pi.LastName] = pi
	}
	return idx, nil
}
