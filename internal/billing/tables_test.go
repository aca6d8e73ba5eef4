package billing

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// mockTables mirrors the mock PI and user forms: six PIs, four explicit
// users, with every start date before Q4 2020.
func mockTables(t *testing.T) (PITable, UserTable) {
	t.Helper()

	pis := PITable{
		{FirstName: "Ada", LastName: "Apple", Email: "apple@example.edu", StartDate: date(t, "2019-12-10"), StorageTB: 20, IsPowerUser: false, SpeedCode: "AAAA"},
		{FirstName: "Bert", LastName: "Banana", Email: "banana@example.edu", StartDate: date(t, "2019-12-10"), StorageTB: 10, IsPowerUser: false, SpeedCode: "BBBB"},
		{FirstName: "Cora", LastName: "Cherry", Email: "cherry@example.edu", StartDate: date(t, "2019-12-04"), StorageTB: 5, IsPowerUser: true, SpeedCode: "CCCC"},
		{FirstName: "Dev", LastName: "Durian", Email: "durian@example.edu", StartDate: date(t, "2020-03-05"), StorageTB: 1, IsPowerUser: true, SpeedCode: "DDDD"},
		{FirstName: "Isla", LastName: "Ice Cream", Email: "icecream@example.edu", StartDate: date(t, "2020-04-14"), StorageTB: 2, IsPowerUser: false, SpeedCode: "EEEE"},
		{FirstName: "Jay", LastName: "Jackfruit", Email: "jackfruit@example.edu", StartDate: date(t, "2020-01-25"), StorageTB: 3, IsPowerUser: true, SpeedCode: "FFFF"},
	}

	users := UserTable{
		{FirstName: "Fruit", LastName: "Salad", Email: "fruit@example.edu", PILastName: "Banana", StartDate: date(t, "2020-01-27"), PowerUser: true},
		{FirstName: "Melon", LastName: "Ball", Email: "melon@example.edu", PILastName: "Durian", StartDate: date(t, "2020-02-01"), PowerUser: true},
		{FirstName: "Grape", LastName: "Soda", Email: "grape@example.edu", PILastName: "Cherry", StartDate: date(t, "2020-05-04"), PowerUser: false},
		{FirstName: "Kiwi", LastName: "Jam", Email: "kiwi@example.edu", PILastName: "Jackfruit", StartDate: date(t, "2020-06-15"), PowerUser: false},
	}

	return pis, users
}
