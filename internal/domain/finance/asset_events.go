package finance

import (
	"time"

	"github.com/finware/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetRegisteredEvent is raised when a new asset is registered
type AssetRegisteredEvent struct {
	shared.BaseDomainEvent
	AssetID         uuid.UUID       `json:"asset_id"`
	AssetNumber     string          `json:"asset_number"`
	Name            string          `json:"name"`
	AcquisitionCost decimal.Decimal `json:"acquisition_cost"`
	SalvageValue    decimal.Decimal `json:"salvage_value"`
	UsefulLifeYears int             `json:"useful_life_years"`
	Method          string          `json:"method"`
	AcquiredAt      time.Time       `json:"acquired_at"`
}

// EventType returns the event type name
func (e *AssetRegisteredEvent) EventType() string {
	return "AssetRegistered"
}

// NewAssetRegisteredEvent creates a new AssetRegisteredEvent
func NewAssetRegisteredEvent(asset *Asset) *AssetRegisteredEvent {
	return &AssetRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("AssetRegistered", "Asset", asset.ID, asset.TenantID),
		AssetID:         asset.ID,
		AssetNumber:     asset.AssetNumber,
		Name:            asset.Name,
		AcquisitionCost: asset.AcquisitionCost.Amount(),
		SalvageValue:    asset.SalvageValue.Amount(),
		UsefulLifeYears: asset.UsefulLifeYears,
		Method:          asset.Method.Name(),
		AcquiredAt:      asset.AcquiredAt,
	}
}

// AssetDepreciationAppliedEvent is raised when depreciation is posted
// against an asset
type AssetDepreciationAppliedEvent struct {
	shared.BaseDomainEvent
	AssetID                 uuid.UUID       `json:"asset_id"`
	AssetNumber             string          `json:"asset_number"`
	Amount                  decimal.Decimal `json:"amount"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulated_depreciation"`
	BookValue               decimal.Decimal `json:"book_value"`
	Status                  AssetStatus     `json:"status"`
}

// EventType returns the event type name
func (e *AssetDepreciationAppliedEvent) EventType() string {
	return "AssetDepreciationApplied"
}

// NewAssetDepreciationAppliedEvent creates a new AssetDepreciationAppliedEvent
func NewAssetDepreciationAppliedEvent(asset *Asset, amount decimal.Decimal) *AssetDepreciationAppliedEvent {
	return &AssetDepreciationAppliedEvent{
		BaseDomainEvent:         shared.NewBaseDomainEvent("AssetDepreciationApplied", "Asset", asset.ID, asset.TenantID),
		AssetID:                 asset.ID,
		AssetNumber:             asset.AssetNumber,
		Amount:                  amount,
		AccumulatedDepreciation: asset.AccumulatedDepreciation,
		BookValue:               asset.BookValue(),
		Status:                  asset.Status,
	}
}

// AssetDisposedEvent is raised when an asset is disposed
type AssetDisposedEvent struct {
	shared.BaseDomainEvent
	AssetID     uuid.UUID       `json:"asset_id"`
	AssetNumber string          `json:"asset_number"`
	BookValue   decimal.Decimal `json:"book_value"`
	DisposedAt  time.Time       `json:"disposed_at"`
}

// EventType returns the event type name
func (e *AssetDisposedEvent) EventType() string {
	return "AssetDisposed"
}

// NewAssetDisposedEvent creates a new AssetDisposedEvent
func NewAssetDisposedEvent(asset *Asset) *AssetDisposedEvent {
	disposedAt := time.Now()
	if asset.DisposedAt != nil {
		disposedAt = *asset.DisposedAt
	}
	return &AssetDisposedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("AssetDisposed", "Asset", asset.ID, asset.TenantID),
		AssetID:         asset.ID,
		AssetNumber:     asset.AssetNumber,
		BookValue:       asset.BookValue(),
		DisposedAt:      disposedAt,
	}
}
