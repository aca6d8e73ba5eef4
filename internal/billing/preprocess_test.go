package billing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocess(t *testing.T) {
	pis, users := mockTables(t)

	outPIs, outUsers, err := Preprocess(pis, users)
	require.NoError(t, err)

	assert.Len(t, outPIs, 6)
	require.Len(t, outUsers, 10, "4 explicit users plus one synthesized row per PI")

	// Synthesized PI rows follow the explicit rows in PI table order.
	assert.Equal(t, "Apple", outUsers[4].LastName)
	assert.True(t, outUsers[4].Synthesized)
	assert.False(t, outUsers[0].Synthesized)

	// A synthesized row sponsors itself and carries the PI's flag.
	assert.Equal(t, "Cherry", outUsers[6].PILastName)
	assert.True(t, outUsers[6].PowerUser)
	assert.False(t, outUsers[4].PowerUser)
}

func TestPreprocessInheritsSpeedCodes(t *testing.T) {
	pis, users := mockTables(t)

	_, outUsers, err := Preprocess(pis, users)
	require.NoError(t, err)

	// Blank user codes resolve to the sponsoring PI's default.
	assert.Equal(t, "BBBB", outUsers[0].SpeedCode)
	assert.Equal(t, "DDDD", outUsers[1].SpeedCode)

	// An explicit code survives preprocessing.
	users[0].SpeedCode = "ZZZZ"
	_, outUsers, err = Preprocess(pis, users)
	require.NoError(t, err)
	assert.Equal(t, "ZZZZ", outUsers[0].SpeedCode)
}

func TestPreprocessIsReferentiallyTransparent(t *testing.T) {
	pis, users := mockTables(t)

	_, first, err := Preprocess(pis, users)
	require.NoError(t, err)
	_, second, err := Preprocess(pis, users)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPreprocessUnknownPI(t *testing.T) {
	pis, users := mockTables(t)
	users[2].PILastName = "Nobody"

	_, _, err := Preprocess(pis, users)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPI))
}

func TestPreprocessDuplicatePI(t *testing.T) {
	pis, users := mockTables(t)
	pis = append(pis, pis[0])

	_, _, err := Preprocess(pis, users)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicatePI))
}
