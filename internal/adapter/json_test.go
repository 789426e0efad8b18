package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONAdapter_Rows(t *testing.T) {
	input := `[
		{"date": "04/01/2025", "description": "Uber trip", "amount": -2500},
		{"date": "05/01/2025", "description": "Salary", "amount": 150000.50}
	]`

	a := &JSONAdapter{}
	rows, err := a.Rows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	v, ok := rows[0].Get("description")
	require.True(t, ok)
	assert.Equal(t, "Uber trip", v)

	// Numbers decode as float64.
	v, _ = rows[1].Get("amount")
	assert.Equal(t, 150000.50, v)
}

func TestJSONAdapter_PreservesKeyOrder(t *testing.T) {
	// Both "value" and "amount" resolve to the amount role; declaration
	// order must survive decoding so the first one wins downstream.
	input := `[{"date": "04/01/2025", "desc": "x", "value": 10, "amount": 20}]`

	a := &JSONAdapter{}
	rows, err := a.Rows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"date", "desc", "value", "amount"}, rows[0].Headers())
}

func TestJSONAdapter_NonArrayPayload(t *testing.T) {
	inputs := []string{
		`{"transactions": []}`,
		`"just a string"`,
		`42`,
	}
	a := &JSONAdapter{}
	for _, input := range inputs {
		_, err := a.Rows(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrNotArray, "input: %s", input)
	}
}

func TestJSONAdapter_InvalidJSON(t *testing.T) {
	a := &JSONAdapter{}
	_, err := a.Rows(strings.NewReader(`[{"date": `))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotArray)
}

func TestJSONAdapter_NonObjectElement(t *testing.T) {
	a := &JSONAdapter{}
	_, err := a.Rows(strings.NewReader(`[1, 2, 3]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON rows must be objects")
}

func TestJSONAdapter_EmptyArray(t *testing.T) {
	a := &JSONAdapter{}
	rows, err := a.Rows(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestJSONAdapter_Extensions(t *testing.T) {
	a := &JSONAdapter{}
	assert.Equal(t, []string{"json"}, a.Extensions())
}
