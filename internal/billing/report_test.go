package billing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBillWithoutPowerUsers(t *testing.T) {
	pis, users, err := Preprocess(mockTables(t))
	require.NoError(t, err)

	bill, err := AssembleBill(DefaultPricing(), pis, users, "Apple", date(t, "2020-12-31"))
	require.NoError(t, err)

	want := strings.Join([]string{
		"Billing report for Apple",
		"Storage",
		"Start: 2019-12-10, Size: 20 TB, Annual price per TB: $50.00, Quarterly Price: $250.00",
		"Speed code: AAAA, Subtotal: $250.00",
		"Power Users",
		"Speed code: AAAA, Subtotal: $0.00",
		"Total: $250.00\n",
	}, "\n")

	assert.Equal(t, want, bill.String())
}

func TestRenderBillWithPowerUser(t *testing.T) {
	pis, users, err := Preprocess(mockTables(t))
	require.NoError(t, err)

	bill, err := AssembleBill(DefaultPricing(), pis, users, "Banana", date(t, "2020-12-31"))
	require.NoError(t, err)

	want := strings.Join([]string{
		"Billing report for Banana",
		"Storage",
		"Start: 2019-12-10, Size: 10 TB, Annual price per TB: $50.00, Quarterly Price: $125.00",
		"Speed code: BBBB, Subtotal: $125.00",
		"Power Users",
		"Name: Fruit, Start: 2020-01-27, Annual price: $1000.00, Quarterly price: $250.00",
		"Speed code: BBBB, Subtotal: $250.00",
		"Total: $375.00\n",
	}, "\n")

	assert.Equal(t, want, bill.String())
}

func TestRenderWritesStringToWriter(t *testing.T) {
	pis, users, err := Preprocess(mockTables(t))
	require.NoError(t, err)

	bill, err := AssembleBill(DefaultPricing(), pis, users, "Cherry", date(t, "2020-12-31"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bill.Render(&buf))
	assert.Equal(t, bill.String(), buf.String())

	// Rendering twice produces identical bytes.
	var again bytes.Buffer
	require.NoError(t, bill.Render(&again))
	assert.Equal(t, buf.String(), again.String())
}
