package finance

import (
	"fmt"

	"github.com/finware/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Method names used on computed schedules and in API payloads
const (
	MethodNameStraightLine     = "STRAIGHT_LINE"
	MethodNameDecliningBalance = "DECLINING_BALANCE"
	MethodNameFin              = "FIN"
)

// moneyScale is the number of decimal places carried by every
// depreciation amount and book value.
const moneyScale = 2

// Method identifies a depreciation method together with its
// method-specific parameters. The set is closed: StraightLine,
// DecliningBalance and Fin are the only implementations, so a
// declining-balance calculation without a factor cannot be expressed.
type Method interface {
	// Name returns the canonical method name
	Name() string
	isMethod()
}

// StraightLine depreciates the depreciable base evenly over the useful life
type StraightLine struct{}

// Name returns the canonical method name
func (StraightLine) Name() string { return MethodNameStraightLine }

func (StraightLine) isMethod() {}

// DecliningBalance applies a fixed annual rate to the prior year's book
// value. Factor is a fraction of the prior book value (0.20 for 20%),
// already divided by 100 by the caller.
type DecliningBalance struct {
	Factor decimal.Decimal
}

// Name returns the canonical method name
func (DecliningBalance) Name() string { return MethodNameDecliningBalance }

func (DecliningBalance) isMethod() {}

// Fin depreciates by a fixed statutory percentage-of-cost table.
// Only 5 and 7 year recovery periods are defined; salvage value is
// always treated as zero.
type Fin struct {
	RecoveryPeriod int
}

// Name returns the canonical method name
func (Fin) Name() string { return MethodNameFin }

func (Fin) isMethod() {}

// finTables holds the percentage-of-cost depreciation per year for each
// supported recovery period. Rates follow 200% declining balance with a
// switch to straight-line under a full-year convention; each table sums
// to 100.
var finTables = map[int][]decimal.Decimal{
	5: {
		decimal.RequireFromString("40"),
		decimal.RequireFromString("24"),
		decimal.RequireFromString("14.4"),
		decimal.RequireFromString("10.8"),
		decimal.RequireFromString("10.8"),
	},
	7: {
		decimal.RequireFromString("28.57"),
		decimal.RequireFromString("20.41"),
		decimal.RequireFromString("14.58"),
		decimal.RequireFromString("10.41"),
		decimal.RequireFromString("8.68"),
		decimal.RequireFromString("8.68"),
		decimal.RequireFromString("8.67"),
	},
}

var oneHundred = decimal.NewFromInt(100)

// Request carries the inputs for one schedule calculation
type Request struct {
	Cost         decimal.Decimal
	SalvageValue decimal.Decimal
	UsefulLife   int
	Method       Method
}

// YearLine is a single row of a depreciation schedule
type YearLine struct {
	Year                   int             `json:"year"`
	Depreciation           decimal.Decimal `json:"depreciation"`
	CumulativeDepreciation decimal.Decimal `json:"cumulative_depreciation"`
	BookValue              decimal.Decimal `json:"book_value"`
}

// Schedule is the computed year-by-year depreciation schedule.
// Years are ordered chronologically and len(Years) == UsefulLife.
type Schedule struct {
	Method            string          `json:"method"`
	Years             []YearLine      `json:"years"`
	TotalDepreciation decimal.Decimal `json:"total_depreciation"`
	FinalBookValue    decimal.Decimal `json:"final_book_value"`
}

// Comparison pairs a straight-line and a declining-balance schedule
// computed from the same inputs for side-by-side display
type Comparison struct {
	StraightLine     *Schedule `json:"straight_line"`
	DecliningBalance *Schedule `json:"declining_balance"`
}

// Calculate produces the full depreciation schedule for the request.
// It is a pure function: no I/O, no shared state, and identical inputs
// always yield identical schedules. Precondition violations return a
// validation domain error before any arithmetic happens.
func Calculate(req Request) (*Schedule, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	switch m := req.Method.(type) {
	case StraightLine:
		return calculateStraightLine(req), nil
	case DecliningBalance:
		return calculateDecliningBalance(req, m.Factor), nil
	case Fin:
		return calculateFin(req, m.RecoveryPeriod), nil
	default:
		return nil, shared.NewValidationError(fmt.Sprintf("unsupported depreciation method %T", req.Method))
	}
}

// Compare runs Calculate for both the straight-line and the
// declining-balance method over the same inputs. There is no logic
// beyond the two independent calculations; pairing the schedules is a
// presentation convenience for the caller.
func Compare(cost, salvageValue decimal.Decimal, usefulLife int, dbFactor decimal.Decimal) (*Comparison, error) {
	sl, err := Calculate(Request{
		Cost:         cost,
		SalvageValue: salvageValue,
		UsefulLife:   usefulLife,
		Method:       StraightLine{},
	})
	if err != nil {
		return nil, err
	}

	db, err := Calculate(Request{
		Cost:         cost,
		SalvageValue: salvageValue,
		UsefulLife:   usefulLife,
		Method:       DecliningBalance{Factor: dbFactor},
	})
	if err != nil {
		return nil, err
	}

	return &Comparison{StraightLine: sl, DecliningBalance: db}, nil
}

func validate(req Request) error {
	if req.Method == nil {
		return shared.NewValidationError("depreciation method is required")
	}
	if !req.Cost.IsPositive() {
		return shared.NewValidationError("asset cost must be greater than zero")
	}
	if req.SalvageValue.IsNegative() {
		return shared.NewValidationError("salvage value must not be negative")
	}
	if req.SalvageValue.GreaterThanOrEqual(req.Cost) {
		return shared.NewValidationError("salvage value must be less than asset cost")
	}
	if req.UsefulLife <= 0 {
		return shared.NewValidationError("useful life must be greater than zero")
	}

	switch m := req.Method.(type) {
	case DecliningBalance:
		if !m.Factor.IsPositive() {
			return shared.NewValidationError("declining balance factor must be greater than zero")
		}
	case Fin:
		if _, ok := finTables[m.RecoveryPeriod]; !ok {
			return shared.NewValidationError("FIN method only supports 5 or 7 year recovery periods")
		}
		if req.UsefulLife != m.RecoveryPeriod {
			return shared.NewValidationError("useful life must equal the FIN recovery period")
		}
	}

	return nil
}

// calculateStraightLine spreads the depreciable base evenly across the
// useful life. The final year absorbs any rounding residue so that
// cumulative depreciation lands exactly on cost minus salvage value.
func calculateStraightLine(req Request) *Schedule {
	base := req.Cost.Sub(req.SalvageValue)
	annual := base.Div(decimal.NewFromInt(int64(req.UsefulLife))).Round(moneyScale)

	years := make([]YearLine, 0, req.UsefulLife)
	cumulative := decimal.Zero
	for year := 1; year <= req.UsefulLife; year++ {
		depreciation := annual
		if year == req.UsefulLife {
			depreciation = base.Sub(cumulative)
		}
		cumulative = cumulative.Add(depreciation)
		years = append(years, YearLine{
			Year:                   year,
			Depreciation:           depreciation,
			CumulativeDepreciation: cumulative,
			BookValue:              req.Cost.Sub(cumulative),
		})
	}

	return &Schedule{
		Method:            MethodNameStraightLine,
		Years:             years,
		TotalDepreciation: cumulative,
		FinalBookValue:    req.Cost.Sub(cumulative),
	}
}

// calculateDecliningBalance applies the factor to the prior year's book
// value. A year's depreciation is clamped so the book value never drops
// below the salvage value; every year after the clamp depreciates zero.
func calculateDecliningBalance(req Request, factor decimal.Decimal) *Schedule {
	years := make([]YearLine, 0, req.UsefulLife)
	cumulative := decimal.Zero
	bookValue := req.Cost
	for year := 1; year <= req.UsefulLife; year++ {
		depreciation := bookValue.Mul(factor).Round(moneyScale)
		remaining := bookValue.Sub(req.SalvageValue)
		if depreciation.GreaterThan(remaining) {
			depreciation = remaining
		}
		cumulative = cumulative.Add(depreciation)
		bookValue = bookValue.Sub(depreciation)
		years = append(years, YearLine{
			Year:                   year,
			Depreciation:           depreciation,
			CumulativeDepreciation: cumulative,
			BookValue:              bookValue,
		})
	}

	return &Schedule{
		Method:            MethodNameDecliningBalance,
		Years:             years,
		TotalDepreciation: cumulative,
		FinalBookValue:    bookValue,
	}
}

// calculateFin depreciates a fixed percentage of cost per year from the
// statutory table. Salvage value is always zero for this method, so the
// final year writes the book value down to exactly zero.
func calculateFin(req Request, recoveryPeriod int) *Schedule {
	table := finTables[recoveryPeriod]

	years := make([]YearLine, 0, recoveryPeriod)
	cumulative := decimal.Zero
	for year := 1; year <= recoveryPeriod; year++ {
		depreciation := req.Cost.Mul(table[year-1]).Div(oneHundred).Round(moneyScale)
		if year == recoveryPeriod {
			depreciation = req.Cost.Sub(cumulative)
		}
		cumulative = cumulative.Add(depreciation)
		years = append(years, YearLine{
			Year:                   year,
			Depreciation:           depreciation,
			CumulativeDepreciation: cumulative,
			BookValue:              req.Cost.Sub(cumulative),
		})
	}

	return &Schedule{
		Method:            MethodNameFin,
		Years:             years,
		TotalDepreciation: cumulative,
		FinalBookValue:    req.Cost.Sub(cumulative),
	}
}
