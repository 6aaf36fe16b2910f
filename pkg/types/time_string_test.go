package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid end of day", input: "23:59"},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "12:60", wantErr: true},
		{name: "with seconds", input: "09:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("16:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	shifted, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), shifted)

	shifted, err = ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), shifted)
}

func TestTimeString_AddMinutes_CrossesMidnight(t *testing.T) {
	ts := TimeString("23:30")

	_, err := ts.AddMinutes(60)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("15:00")))
	assert.Equal(t, TimeString("15:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:30"), ts)

	assert.Error(t, ts.Scan(42))
	assert.Error(t, ts.Scan("not-a-time"))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("11:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00", v)

	_, err = TimeString("25:00").Value()
	assert.Error(t, err)
}
