package forecast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateTruncatesToShorterSequence(t *testing.T) {
	got := Aggregate(Series{
		Times:        []string{"t0", "t1", "t2"},
		Temperatures: []float64{1.0, 2.0},
	})

	require.Equal(t, []Sample{
		{Date: "t0", Temperature: "1"},
		{Date: "t1", Temperature: "2"},
	}, got)

	got = Aggregate(Series{
		Times:        []string{"t0"},
		Temperatures: []float64{4.5, 5.5, 6.5},
	})
	require.Equal(t, []Sample{{Date: "t0", Temperature: "4.5"}}, got)
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(Series{})
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestAggregateKeepsUpstreamOrder(t *testing.T) {
	got := Aggregate(Series{
		Times:        []string{"2024-01-01T02:00", "2024-01-01T00:00", "2024-01-01T01:00"},
		Temperatures: []float64{-0.5, 3.5, 12.25},
	})

	require.Len(t, got, 3)
	require.Equal(t, Sample{Date: "2024-01-01T02:00", Temperature: "-0.5"}, got[0])
	require.Equal(t, Sample{Date: "2024-01-01T00:00", Temperature: "3.5"}, got[1])
	require.Equal(t, Sample{Date: "2024-01-01T01:00", Temperature: "12.25"}, got[2])
}

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{3.5, "3.5"},
		{-12.3, "-12.3"},
		{21.04, "21.04"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, FormatTemperature(tc.in))
	}
}
