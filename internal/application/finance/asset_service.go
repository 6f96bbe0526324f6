package finance

import (
	"context"
	"time"

	"github.com/finware/backend/internal/domain/finance"
	"github.com/finware/backend/internal/domain/shared"
	"github.com/finware/backend/internal/domain/shared/valueobject"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AssetService provides application-level fixed-asset operations
type AssetService struct {
	assetRepo    finance.AssetRepository
	scheduleRepo finance.ScheduleRepository
	validate     *validator.Validate
	logger       *zap.Logger
}

// AssetServiceOption is a functional option for configuring AssetService
type AssetServiceOption func(*AssetService)

// WithScheduleRepository sets the schedule snapshot repository
func WithScheduleRepository(repo finance.ScheduleRepository) AssetServiceOption {
	return func(s *AssetService) {
		s.scheduleRepo = repo
	}
}

// WithAssetLogger sets the service logger
func WithAssetLogger(logger *zap.Logger) AssetServiceOption {
	return func(s *AssetService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewAssetService creates a new AssetService
func NewAssetService(assetRepo finance.AssetRepository, opts ...AssetServiceOption) *AssetService {
	s := &AssetService{
		assetRepo: assetRepo,
		validate:  validator.New(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterAssetRequest represents a request to register a fixed asset
type RegisterAssetRequest struct {
	Name               string          `json:"name" validate:"required"`
	AssetCost          decimal.Decimal `json:"assetCost" validate:"required"`
	ResidualValue      decimal.Decimal `json:"residualValue"`
	UsefulLifeYears    int             `json:"usefulLifeYears" validate:"required,gt=0"`
	DepreciationMethod string          `json:"depreciationMethod" validate:"required,oneof=STRAIGHT_LINE DECLINING_BALANCE FIN"`
	DepreciationRate   decimal.Decimal `json:"depreciationRate"`
	Currency           string          `json:"currency"`
	AcquiredAt         time.Time       `json:"acquiredAt" validate:"required"`
}

// AssetResponse represents an asset in API responses
type AssetResponse struct {
	ID                      uuid.UUID       `json:"id"`
	TenantID                uuid.UUID       `json:"tenantId"`
	AssetNumber             string          `json:"assetNumber"`
	Name                    string          `json:"name"`
	AssetCost               decimal.Decimal `json:"assetCost"`
	ResidualValue           decimal.Decimal `json:"residualValue"`
	UsefulLifeYears         int             `json:"usefulLifeYears"`
	DepreciationMethod      string          `json:"depreciationMethod"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
	Currency                string          `json:"currency"`
	Status                  string          `json:"status"`
	AcquiredAt              time.Time       `json:"acquiredAt"`
	DisposedAt              *time.Time      `json:"disposedAt,omitempty"`
	Version                 int             `json:"version"`
}

// RegisterAsset registers a new depreciable asset for a tenant
func (s *AssetService) RegisterAsset(ctx context.Context, tenantID uuid.UUID, req RegisterAssetRequest) (*AssetResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	method, err := buildMethod(req.DepreciationMethod, req.UsefulLifeYears, req.DepreciationRate)
	if err != nil {
		return nil, err
	}

	currency := valueobject.Currency(req.Currency)
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}

	cost, err := valueobject.NewMoney(req.AssetCost, currency)
	if err != nil {
		return nil, shared.NewValidationError(err.Error())
	}
	residual, err := valueobject.NewMoney(req.ResidualValue, currency)
	if err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	assetNumber, err := s.assetRepo.GenerateAssetNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	asset, err := finance.NewAsset(tenantID, assetNumber, req.Name, cost, residual, req.UsefulLifeYears, method, req.AcquiredAt)
	if err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, asset); err != nil {
		return nil, err
	}

	s.logger.Info("registered asset",
		zap.String("asset_number", asset.AssetNumber),
		zap.String("method", asset.Method.Name()),
		zap.String("tenant_id", tenantID.String()),
	)

	return toAssetResponse(asset), nil
}

// GetAsset retrieves an asset by ID
func (s *AssetService) GetAsset(ctx context.Context, tenantID, assetID uuid.UUID) (*AssetResponse, error) {
	asset, err := s.assetRepo.FindByIDForTenant(ctx, tenantID, assetID)
	if err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// ListAssets retrieves assets for a tenant matching the filter
func (s *AssetService) ListAssets(ctx context.Context, tenantID uuid.UUID, filter finance.AssetFilter) ([]AssetResponse, int64, error) {
	assets, err := s.assetRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.assetRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, *toAssetResponse(&assets[i]))
	}
	return responses, total, nil
}

// GenerateSchedule computes the asset's full depreciation schedule and,
// when a schedule repository is configured, persists a snapshot of it
func (s *AssetService) GenerateSchedule(ctx context.Context, tenantID, assetID uuid.UUID) (*ScheduleResponse, error) {
	asset, err := s.assetRepo.FindByIDForTenant(ctx, tenantID, assetID)
	if err != nil {
		return nil, err
	}

	schedule, err := finance.Calculate(asset.DepreciationRequest())
	if err != nil {
		return nil, err
	}

	if s.scheduleRepo != nil {
		record := finance.NewScheduleRecord(tenantID, asset.ID, *schedule)
		if err := s.scheduleRepo.Save(ctx, record); err != nil {
			return nil, err
		}
	}

	s.logger.Info("generated depreciation schedule",
		zap.String("asset_number", asset.AssetNumber),
		zap.String("method", schedule.Method),
		zap.Int("years", len(schedule.Years)),
	)

	return toScheduleResponse(schedule), nil
}

// PostAnnualDepreciation applies the next unposted schedule year to the
// asset and persists the updated aggregate
func (s *AssetService) PostAnnualDepreciation(ctx context.Context, tenantID, assetID uuid.UUID) (*AssetResponse, error) {
	asset, err := s.assetRepo.FindByIDForTenant(ctx, tenantID, assetID)
	if err != nil {
		return nil, err
	}

	schedule, err := finance.Calculate(asset.DepreciationRequest())
	if err != nil {
		return nil, err
	}

	amount := decimal.Zero
	posted := false
	for _, line := range schedule.Years {
		if line.CumulativeDepreciation.GreaterThan(asset.AccumulatedDepreciation) {
			amount = line.CumulativeDepreciation.Sub(asset.AccumulatedDepreciation)
			posted = true
			break
		}
	}
	if !posted {
		return nil, shared.NewDomainError("FULLY_DEPRECIATED", "Asset has no depreciation left to post")
	}

	if err := asset.ApplyDepreciation(amount); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Save(ctx, asset); err != nil {
		return nil, err
	}

	s.logger.Info("posted annual depreciation",
		zap.String("asset_number", asset.AssetNumber),
		zap.String("amount", amount.String()),
		zap.String("book_value", asset.BookValue().String()),
	)

	return toAssetResponse(asset), nil
}

// DisposeAsset marks the asset as disposed and persists it
func (s *AssetService) DisposeAsset(ctx context.Context, tenantID, assetID uuid.UUID, at time.Time) (*AssetResponse, error) {
	asset, err := s.assetRepo.FindByIDForTenant(ctx, tenantID, assetID)
	if err != nil {
		return nil, err
	}

	if err := asset.Dispose(at); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Save(ctx, asset); err != nil {
		return nil, err
	}

	s.logger.Info("disposed asset",
		zap.String("asset_number", asset.AssetNumber),
		zap.Time("disposed_at", at),
	)

	return toAssetResponse(asset), nil
}

func toAssetResponse(asset *finance.Asset) *AssetResponse {
	return &AssetResponse{
		ID:                      asset.ID,
		TenantID:                asset.TenantID,
		AssetNumber:             asset.AssetNumber,
		Name:                    asset.Name,
		AssetCost:               asset.AcquisitionCost.Amount(),
		ResidualValue:           asset.SalvageValue.Amount(),
		UsefulLifeYears:         asset.UsefulLifeYears,
		DepreciationMethod:      asset.Method.Name(),
		AccumulatedDepreciation: asset.AccumulatedDepreciation,
		BookValue:               asset.BookValue(),
		Currency:                string(asset.AcquisitionCost.Currency()),
		Status:                  asset.Status.String(),
		AcquiredAt:              asset.AcquiredAt,
		DisposedAt:              asset.DisposedAt,
		Version:                 asset.Version,
	}
}
