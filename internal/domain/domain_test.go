package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		input    string
		expected Date
	}{
		{input: "2025-01-10", expected: DateOf(2025, 1, 10)},
		{input: " 2025-01-10 ", expected: DateOf(2025, 1, 10)},
		{input: "2025-01-10T00:00:00Z", expected: DateOf(2025, 1, 10)},
		{input: "2025-01-10T23:59:59.123Z", expected: DateOf(2025, 1, 10)},
		{input: "2025-01-10T12:00:00", expected: DateOf(2025, 1, 10)},
		// 00:30 по Варшаве ещё 9 января в UTC
		{input: "2025-01-10T00:30:00+01:00", expected: DateOf(2025, 1, 9)},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "got %s", got)
		})
	}

	_, err := ParseDate("10/01/2025")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		In  Date `json:"in"`
		Out Date `json:"out"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"in":"2025-01-10","out":""}`), &payload))
	assert.Equal(t, "2025-01-10", payload.In.String())
	assert.True(t, payload.Out.IsZero())

	data, err := json.Marshal(OccupiedRange{CheckInDate: DateOf(2025, 1, 10), CheckOutDate: DateOf(2025, 1, 12)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"CheckInDate":"2025-01-10","CheckOutDate":"2025-01-12"}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"in":"tomorrow"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"in":20250110}`), &payload))
}

func TestDate_Arithmetic(t *testing.T) {
	in := NewDate(time.Date(2025, 3, 29, 22, 0, 0, 0, time.UTC))
	out := DateOf(2025, 4, 2)

	assert.Equal(t, 4, in.DaysUntil(out))
	assert.Equal(t, -4, out.DaysUntil(in))
	assert.True(t, in.AddDays(4).Equal(out))
	assert.True(t, in.Before(out))
	assert.True(t, out.After(in))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "200.00", Money(20000).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-1.50", Money(-150).String())
	assert.Equal(t, Money(30000), Money(10000).Times(3))

	data, err := json.Marshal(struct {
		Price Money `json:"Price"`
	}{Price: 12345})
	require.NoError(t, err)
	assert.Equal(t, `{"Price":123.45}`, string(data))

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`99.99`), &m))
	assert.Equal(t, Money(9999), m)
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
}

func TestReservation_Overlaps(t *testing.T) {
	r := Reservation{CheckInDate: DateOf(2025, 1, 10), CheckOutDate: DateOf(2025, 1, 12)}

	assert.True(t, r.Overlaps(DateOf(2025, 1, 11), DateOf(2025, 1, 13)))
	assert.True(t, r.Overlaps(DateOf(2025, 1, 10), DateOf(2025, 1, 12)))
	assert.True(t, r.Overlaps(DateOf(2025, 1, 1), DateOf(2025, 1, 30)))
	assert.False(t, r.Overlaps(DateOf(2025, 1, 12), DateOf(2025, 1, 14)))
	assert.False(t, r.Overlaps(DateOf(2025, 1, 8), DateOf(2025, 1, 10)))
}
