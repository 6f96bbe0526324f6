package finance

import (
	"testing"

	"github.com/finware/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateStraightLine(t *testing.T) {
	t.Run("even schedule with salvage value", func(t *testing.T) {
		schedule, err := Calculate(Request{
			Cost:         dec("100000"),
			SalvageValue: dec("10000"),
			UsefulLife:   5,
			Method:       StraightLine{},
		})
		require.NoError(t, err)
		require.Len(t, schedule.Years, 5)

		for _, line := range schedule.Years {
			assert.True(t, line.Depreciation.Equal(dec("18000")),
				"year %d depreciation = %s", line.Year, line.Depreciation)
		}
		assert.True(t, schedule.Years[2].CumulativeDepreciation.Equal(dec("54000")))
		assert.True(t, schedule.Years[4].BookValue.Equal(dec("10000")))
		assert.True(t, schedule.TotalDepreciation.Equal(dec("90000")))
		assert.True(t, schedule.FinalBookValue.Equal(dec("10000")))
	})

	t.Run("final year absorbs rounding residue", func(t *testing.T) {
		schedule, err := Calculate(Request{
			Cost:       dec("1000"),
			UsefulLife: 3,
			Method:     StraightLine{},
		})
		require.NoError(t, err)
		require.Len(t, schedule.Years, 3)

		assert.True(t, schedule.Years[0].Depreciation.Equal(dec("333.33")))
		assert.True(t, schedule.Years[1].Depreciation.Equal(dec("333.33")))
		assert.True(t, schedule.Years[2].Depreciation.Equal(dec("333.34")))
		assert.True(t, schedule.TotalDepreciation.Equal(dec("1000")))
		assert.True(t, schedule.FinalBookValue.IsZero())
	})

	t.Run("single year writes straight down to salvage", func(t *testing.T) {
		schedule, err := Calculate(Request{
			Cost:         dec("5000"),
			SalvageValue: dec("500"),
			UsefulLife:   1,
			Method:       StraightLine{},
		})
		require.NoError(t, err)
		require.Len(t, schedule.Years, 1)
		assert.True(t, schedule.Years[0].Depreciation.Equal(dec("4500")))
		assert.True(t, schedule.FinalBookValue.Equal(dec("500")))
	})

	t.Run("total always equals cost minus salvage", func(t *testing.T) {
		cases := []struct {
			cost, salvage string
			life          int
		}{
			{"99999.99", "0.01", 7},
			{"12345.67", "1234.56", 10},
			{"70000", "7000", 3},
		}
		for _, tc := range cases {
			schedule, err := Calculate(Request{
				Cost:         dec(tc.cost),
				SalvageValue: dec(tc.salvage),
				UsefulLife:   tc.life,
				Method:       StraightLine{},
			})
			require.NoError(t, err)
			expected := dec(tc.cost).Sub(dec(tc.salvage))
			assert.True(t, schedule.TotalDepreciation.Equal(expected),
				"cost=%s salvage=%s life=%d total=%s", tc.cost, tc.salvage, tc.life, schedule.TotalDepreciation)
			assert.True(t, schedule.FinalBookValue.Equal(dec(tc.salvage)))
		}
	})
}

func TestCalculateDecliningBalance(t *testing.T) {
	t.Run("applies factor to prior book value", func(t *testing.T) {
		schedule, err := Calculate(Request{
			Cost:         dec("50000"),
			SalvageValue: dec("5000"),
			UsefulLife:   4,
			Method:       DecliningBalance{Factor: dec("0.25")},
		})
		require.NoError(t, err)
		require.Len(t, schedule.Years, 4)

		assert.True(t, schedule.Years[0].Depreciation.Equal(dec("12500")))
		assert.True(t, schedule.Years[0].BookValue.Equal(dec("37500")))
		assert.True(t, schedule.Years[1].Depreciation.Equal(dec("9375")))
		assert.True(t, schedule.Years[1].BookValue.Equal(dec("28125")))
		assert.True(t, schedule.Years[2].Depreciation.Equal(dec("7031.25")))
		assert.True(t, schedule.Years[3].Depreciation.Equal(dec("5273.44")))
	})

	t.Run("book value never drops below salvage and zeroes after clamp", func(t *testing.T) {
		schedule, err := Calculate(Request{
			Cost:         dec("10000"),
			SalvageValue: dec("6000"),
			UsefulLife:   6,
			Method:       DecliningBalance{Factor: dec("0.35")},
		})
		require.NoError(t, err)

		// y1: 3500 -> 6500; y2: 2275 clamped to 500 -> 6000; y3+: 0
		assert.True(t, schedule.Years[0].Depreciation.Equal(dec("3500")))
		assert.True(t, schedule.Years[1].Depreciation.Equal(dec("500")))
		assert.True(t, schedule.Years[1].BookValue.Equal(dec("6000")))
		for _, line := range schedule.Years[2:] {
			assert.True(t, line.Depreciation.IsZero(), "year %d should be zero", line.Year)
			assert.True(t, line.BookValue.Equal(dec("6000")))
		}
		assert.True(t, schedule.FinalBookValue.Equal(dec("6000")))
	})

	t.Run("book value is non-increasing and floored at salvage", func(t *testing.T) {
		schedule, err := Calculate(Request{
			Cost:         dec("80000"),
			SalvageValue: dec("8000"),
			UsefulLife:   10,
			Method:       DecliningBalance{Factor: dec("0.3333")},
		})
		require.NoError(t, err)

		previous := dec("80000")
		for _, line := range schedule.Years {
			assert.True(t, line.BookValue.LessThanOrEqual(previous),
				"year %d book value increased", line.Year)
			assert.True(t, line.BookValue.GreaterThanOrEqual(dec("8000")),
				"year %d book value below salvage", line.Year)
			previous = line.BookValue
		}
	})

	t.Run("may finish above salvage when the balance never decays", func(t *testing.T) {
		schedule, err := Calculate(Request{
			Cost:         dec("100000"),
			SalvageValue: dec("1000"),
			UsefulLife:   3,
			Method:       DecliningBalance{Factor: dec("0.2")},
		})
		require.NoError(t, err)
		assert.True(t, schedule.FinalBookValue.GreaterThan(dec("1000")))
		assert.True(t, schedule.TotalDepreciation.LessThan(dec("99000")))
	})
}

func TestCalculateFin(t *testing.T) {
	t.Run("five year table fully depreciates cost", func(t *testing.T) {
		schedule, err := Calculate(Request{
			Cost:       dec("100000"),
			UsefulLife: 5,
			Method:     Fin{RecoveryPeriod: 5},
		})
		require.NoError(t, err)
		require.Len(t, schedule.Years, 5)

		assert.True(t, schedule.Years[0].Depreciation.Equal(dec("40000")))
		assert.True(t, schedule.Years[1].Depreciation.Equal(dec("24000")))
		assert.True(t, schedule.Years[2].Depreciation.Equal(dec("14400")))
		assert.True(t, schedule.Years[3].Depreciation.Equal(dec("10800")))
		assert.True(t, schedule.Years[4].Depreciation.Equal(dec("10800")))
		assert.True(t, schedule.TotalDepreciation.Equal(dec("100000")))
		assert.True(t, schedule.FinalBookValue.IsZero())
	})

	t.Run("seven year table absorbs residue in the final year", func(t *testing.T) {
		schedule, err := Calculate(Request{
			Cost:       dec("33333"),
			UsefulLife: 7,
			Method:     Fin{RecoveryPeriod: 7},
		})
		require.NoError(t, err)
		require.Len(t, schedule.Years, 7)
		assert.True(t, schedule.TotalDepreciation.Equal(dec("33333")))
		assert.True(t, schedule.FinalBookValue.IsZero())
	})

	t.Run("rejects unsupported recovery periods", func(t *testing.T) {
		_, err := Calculate(Request{
			Cost:       dec("10000"),
			UsefulLife: 6,
			Method:     Fin{RecoveryPeriod: 6},
		})
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		assert.Contains(t, err.Error(), "FIN method only supports 5 or 7 year recovery periods")
	})

	t.Run("rejects useful life that differs from the recovery period", func(t *testing.T) {
		_, err := Calculate(Request{
			Cost:       dec("10000"),
			UsefulLife: 6,
			Method:     Fin{RecoveryPeriod: 5},
		})
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestCalculateValidation(t *testing.T) {
	valid := Request{
		Cost:         dec("1000"),
		SalvageValue: dec("100"),
		UsefulLife:   5,
		Method:       StraightLine{},
	}

	cases := []struct {
		name    string
		mutate  func(r Request) Request
		message string
	}{
		{
			name:    "zero cost",
			mutate:  func(r Request) Request { r.Cost = decimal.Zero; return r },
			message: "asset cost must be greater than zero",
		},
		{
			name:    "negative cost",
			mutate:  func(r Request) Request { r.Cost = dec("-1"); return r },
			message: "asset cost must be greater than zero",
		},
		{
			name:    "negative salvage",
			mutate:  func(r Request) Request { r.SalvageValue = dec("-1"); return r },
			message: "salvage value must not be negative",
		},
		{
			name:    "salvage equals cost",
			mutate:  func(r Request) Request { r.SalvageValue = r.Cost; return r },
			message: "salvage value must be less than asset cost",
		},
		{
			name:    "salvage above cost",
			mutate:  func(r Request) Request { r.SalvageValue = dec("2000"); return r },
			message: "salvage value must be less than asset cost",
		},
		{
			name:    "zero useful life",
			mutate:  func(r Request) Request { r.UsefulLife = 0; return r },
			message: "useful life must be greater than zero",
		},
		{
			name:    "missing method",
			mutate:  func(r Request) Request { r.Method = nil; return r },
			message: "depreciation method is required",
		},
		{
			name:    "zero declining balance factor",
			mutate:  func(r Request) Request { r.Method = DecliningBalance{}; return r },
			message: "declining balance factor must be greater than zero",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.mutate(valid))
			require.Error(t, err)
			assert.True(t, shared.IsValidationError(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	req := Request{
		Cost:         dec("73500.50"),
		SalvageValue: dec("3500.25"),
		UsefulLife:   8,
		Method:       DecliningBalance{Factor: dec("0.3333")},
	}

	first, err := Calculate(req)
	require.NoError(t, err)
	second, err := Calculate(req)
	require.NoError(t, err)

	require.Equal(t, len(first.Years), len(second.Years))
	for i := range first.Years {
		assert.True(t, first.Years[i].Depreciation.Equal(second.Years[i].Depreciation))
		assert.True(t, first.Years[i].CumulativeDepreciation.Equal(second.Years[i].CumulativeDepreciation))
		assert.True(t, first.Years[i].BookValue.Equal(second.Years[i].BookValue))
	}
	assert.True(t, first.TotalDepreciation.Equal(second.TotalDepreciation))
	assert.True(t, first.FinalBookValue.Equal(second.FinalBookValue))
}

func TestCompare(t *testing.T) {
	t.Run("pairs both schedules over the same inputs", func(t *testing.T) {
		comparison, err := Compare(dec("50000"), dec("5000"), 4, dec("0.25"))
		require.NoError(t, err)

		require.NotNil(t, comparison.StraightLine)
		require.NotNil(t, comparison.DecliningBalance)
		assert.Equal(t, MethodNameStraightLine, comparison.StraightLine.Method)
		assert.Equal(t, MethodNameDecliningBalance, comparison.DecliningBalance.Method)
		assert.Len(t, comparison.StraightLine.Years, 4)
		assert.Len(t, comparison.DecliningBalance.Years, 4)

		// Both methods start from the same depreciable facts
		assert.True(t, comparison.StraightLine.Years[0].Depreciation.Equal(dec("11250")))
		assert.True(t, comparison.DecliningBalance.Years[0].Depreciation.Equal(dec("12500")))
	})

	t.Run("propagates validation failures", func(t *testing.T) {
		_, err := Compare(dec("50000"), dec("5000"), 4, decimal.Zero)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}
