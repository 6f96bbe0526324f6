package finance

import (
	"context"

	"github.com/finware/backend/internal/domain/finance"
	"github.com/finware/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// rateScale is the precision used when converting a percentage rate
// (e.g. 33.33) into a declining-balance factor (0.3333).
const rateScale = 6

var oneHundred = decimal.NewFromInt(100)

// defaultPresetRates is the fixed menu of declining-balance percentages
// offered to callers. It is a convenience only; the engine accepts any
// positive factor.
var defaultPresetRates = []string{"20", "25", "30", "33.33", "35"}

// DepreciationService provides application-level depreciation schedule
// operations
type DepreciationService struct {
	validate    *validator.Validate
	logger      *zap.Logger
	presetRates []decimal.Decimal
}

// DepreciationServiceOption is a functional option for configuring DepreciationService
type DepreciationServiceOption func(*DepreciationService)

// WithPresetRates overrides the preset declining-balance rate menu
func WithPresetRates(rates []decimal.Decimal) DepreciationServiceOption {
	return func(s *DepreciationService) {
		if len(rates) > 0 {
			s.presetRates = rates
		}
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) DepreciationServiceOption {
	return func(s *DepreciationService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewDepreciationService creates a new DepreciationService
func NewDepreciationService(opts ...DepreciationServiceOption) *DepreciationService {
	presets := make([]decimal.Decimal, 0, len(defaultPresetRates))
	for _, r := range defaultPresetRates {
		presets = append(presets, decimal.RequireFromString(r))
	}

	s := &DepreciationService{
		validate:    validator.New(),
		logger:      zap.NewNop(),
		presetRates: presets,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateScheduleRequest represents a request to calculate a
// depreciation schedule
type CalculateScheduleRequest struct {
	AssetCost          decimal.Decimal `json:"assetCost" validate:"required"`
	ResidualValue      decimal.Decimal `json:"residualValue"`
	UsefulLifeYears    int             `json:"usefulLifeYears" validate:"required,gt=0"`
	DepreciationMethod string          `json:"depreciationMethod" validate:"required,oneof=STRAIGHT_LINE DECLINING_BALANCE FIN"`
	DepreciationRate   decimal.Decimal `json:"depreciationRate"`
}

// CompareSchedulesRequest represents a request to compare the
// straight-line and declining-balance schedules side by side
type CompareSchedulesRequest struct {
	AssetCost        decimal.Decimal `json:"assetCost" validate:"required"`
	ResidualValue    decimal.Decimal `json:"residualValue"`
	UsefulLifeYears  int             `json:"usefulLifeYears" validate:"required,gt=0"`
	DepreciationRate decimal.Decimal `json:"depreciationRate" validate:"required"`
}

// ScheduleYearResponse is one schedule row in API responses
type ScheduleYearResponse struct {
	Year                   int             `json:"year"`
	Depreciation           decimal.Decimal `json:"depreciation"`
	CumulativeDepreciation decimal.Decimal `json:"cumulativeDepreciation"`
	BookValue              decimal.Decimal `json:"bookValue"`
}

// ScheduleResponse represents a computed schedule in API responses
type ScheduleResponse struct {
	Method            string                 `json:"method"`
	Years             []ScheduleYearResponse `json:"years"`
	TotalDepreciation decimal.Decimal        `json:"totalDepreciation"`
	FinalBookValue    decimal.Decimal        `json:"finalBookValue"`
}

// ComparisonResponse pairs the two schedules for side-by-side display
type ComparisonResponse struct {
	StraightLine     *ScheduleResponse `json:"straightLine"`
	DecliningBalance *ScheduleResponse `json:"decliningBalance"`
}

// CalculateSchedule validates the request, maps it onto the engine and
// returns the computed schedule
func (s *DepreciationService) CalculateSchedule(ctx context.Context, req CalculateScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	method, err := buildMethod(req.DepreciationMethod, req.UsefulLifeYears, req.DepreciationRate)
	if err != nil {
		return nil, err
	}

	residual := req.ResidualValue
	if _, ok := method.(finance.Fin); ok {
		// FIN schedules always write down to zero
		residual = decimal.Zero
	}

	schedule, err := finance.Calculate(finance.Request{
		Cost:         req.AssetCost,
		SalvageValue: residual,
		UsefulLife:   req.UsefulLifeYears,
		Method:       method,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("calculated depreciation schedule",
		zap.String("method", schedule.Method),
		zap.Int("useful_life_years", req.UsefulLifeYears),
		zap.String("total_depreciation", schedule.TotalDepreciation.String()),
	)

	return toScheduleResponse(schedule), nil
}

// CompareSchedules runs the straight-line and declining-balance
// calculations over the same inputs and pairs the results
func (s *DepreciationService) CompareSchedules(ctx context.Context, req CompareSchedulesRequest) (*ComparisonResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	factor := rateToFactor(req.DepreciationRate)
	comparison, err := finance.Compare(req.AssetCost, req.ResidualValue, req.UsefulLifeYears, factor)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("compared depreciation schedules",
		zap.Int("useful_life_years", req.UsefulLifeYears),
		zap.String("rate", req.DepreciationRate.String()),
	)

	return &ComparisonResponse{
		StraightLine:     toScheduleResponse(comparison.StraightLine),
		DecliningBalance: toScheduleResponse(comparison.DecliningBalance),
	}, nil
}

// PresetDecliningBalanceRates returns the fixed menu of
// declining-balance percentages offered to callers
func (s *DepreciationService) PresetDecliningBalanceRates() []decimal.Decimal {
	rates := make([]decimal.Decimal, len(s.presetRates))
	copy(rates, s.presetRates)
	return rates
}

// rateToFactor converts a percentage rate to a fractional factor at
// 6-decimal precision (33.33 -> 0.3333)
func rateToFactor(rate decimal.Decimal) decimal.Decimal {
	return rate.DivRound(oneHundred, rateScale)
}

// buildMethod maps a method name plus its parameters onto the engine's
// method variants
func buildMethod(name string, usefulLifeYears int, rate decimal.Decimal) (finance.Method, error) {
	switch name {
	case finance.MethodNameStraightLine:
		return finance.StraightLine{}, nil
	case finance.MethodNameDecliningBalance:
		if !rate.IsPositive() {
			return nil, shared.NewValidationError("depreciation rate is required for the declining balance method")
		}
		return finance.DecliningBalance{Factor: rateToFactor(rate)}, nil
	case finance.MethodNameFin:
		return finance.Fin{RecoveryPeriod: usefulLifeYears}, nil
	default:
		return nil, shared.NewValidationError("unknown depreciation method: " + name)
	}
}

func toScheduleResponse(schedule *finance.Schedule) *ScheduleResponse {
	years := make([]ScheduleYearResponse, 0, len(schedule.Years))
	for _, line := range schedule.Years {
		years = append(years, ScheduleYearResponse{
			Year:                   line.Year,
			Depreciation:           line.Depreciation,
			CumulativeDepreciation: line.CumulativeDepreciation,
			BookValue:              line.BookValue,
		})
	}
	return &ScheduleResponse{
		Method:            schedule.Method,
		Years:             years,
		TotalDepreciation: schedule.TotalDepreciation,
		FinalBookValue:    schedule.FinalBookValue,
	}
}
