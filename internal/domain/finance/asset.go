package finance

import (
	"time"

	"github.com/finware/backend/internal/domain/shared"
	"github.com/finware/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetStatus represents the lifecycle state of a fixed asset
type AssetStatus string

const (
	AssetStatusActive           AssetStatus = "ACTIVE"
	AssetStatusFullyDepreciated AssetStatus = "FULLY_DEPRECIATED"
	AssetStatusDisposed         AssetStatus = "DISPOSED"
)

// IsValid checks if the status is a valid AssetStatus
func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetStatusActive, AssetStatusFullyDepreciated, AssetStatusDisposed:
		return true
	}
	return false
}

// String returns the string representation of AssetStatus
func (s AssetStatus) String() string {
	return string(s)
}

// Asset represents a depreciable fixed asset aggregate root.
// It carries the acquisition facts a depreciation schedule is computed
// from and tracks the depreciation actually posted against it.
type Asset struct {
	shared.TenantAggregateRoot
	AssetNumber             string
	Name                    string
	AcquisitionCost         valueobject.Money
	SalvageValue            valueobject.Money
	UsefulLifeYears         int
	Method                  Method
	AccumulatedDepreciation decimal.Decimal
	Status                  AssetStatus
	AcquiredAt              time.Time
	DisposedAt              *time.Time
}

// NewAsset creates a new active asset. The depreciation preconditions
// are enforced here so an asset that cannot produce a valid schedule is
// never constructed.
func NewAsset(
	tenantID uuid.UUID,
	assetNumber string,
	name string,
	acquisitionCost valueobject.Money,
	salvageValue valueobject.Money,
	usefulLifeYears int,
	method Method,
	acquiredAt time.Time,
) (*Asset, error) {
	if assetNumber == "" {
		return nil, shared.NewValidationError("asset number is required")
	}
	if name == "" {
		return nil, shared.NewValidationError("asset name is required")
	}
	if acquisitionCost.Currency() != salvageValue.Currency() {
		return nil, shared.NewValidationError("acquisition cost and salvage value must share a currency")
	}

	// FIN always depreciates to zero regardless of the supplied salvage
	if _, ok := method.(Fin); ok {
		salvageValue = valueobject.Zero(salvageValue.Currency())
	}

	if err := validate(Request{
		Cost:         acquisitionCost.Amount(),
		SalvageValue: salvageValue.Amount(),
		UsefulLife:   usefulLifeYears,
		Method:       method,
	}); err != nil {
		return nil, err
	}

	asset := &Asset{
		TenantAggregateRoot:     shared.NewTenantAggregateRoot(tenantID),
		AssetNumber:             assetNumber,
		Name:                    name,
		AcquisitionCost:         acquisitionCost,
		SalvageValue:            salvageValue,
		UsefulLifeYears:         usefulLifeYears,
		Method:                  method,
		AccumulatedDepreciation: decimal.Zero,
		Status:                  AssetStatusActive,
		AcquiredAt:              acquiredAt,
	}
	asset.AddDomainEvent(NewAssetRegisteredEvent(asset))
	return asset, nil
}

// DepreciationRequest projects the asset into an engine request
func (a *Asset) DepreciationRequest() Request {
	return Request{
		Cost:         a.AcquisitionCost.Amount(),
		SalvageValue: a.SalvageValue.Amount(),
		UsefulLife:   a.UsefulLifeYears,
		Method:       a.Method,
	}
}

// BookValue returns the asset's current carrying value
func (a *Asset) BookValue() decimal.Decimal {
	return a.AcquisitionCost.Amount().Sub(a.AccumulatedDepreciation)
}

// DepreciableBase returns cost minus salvage, the most the asset can
// ever depreciate
func (a *Asset) DepreciableBase() decimal.Decimal {
	return a.AcquisitionCost.Amount().Sub(a.SalvageValue.Amount())
}

// ApplyDepreciation posts one period's depreciation against the asset.
// The amount is capped at the remaining depreciable base; reaching the
// base flips the asset to FULLY_DEPRECIATED.
func (a *Asset) ApplyDepreciation(amount decimal.Decimal) error {
	if a.Status == AssetStatusDisposed {
		return shared.ErrInvalidState
	}
	if amount.IsNegative() {
		return shared.NewValidationError("depreciation amount must not be negative")
	}

	remaining := a.DepreciableBase().Sub(a.AccumulatedDepreciation)
	if amount.GreaterThan(remaining) {
		amount = remaining
	}

	a.AccumulatedDepreciation = a.AccumulatedDepreciation.Add(amount)
	if a.AccumulatedDepreciation.GreaterThanOrEqual(a.DepreciableBase()) {
		a.Status = AssetStatusFullyDepreciated
	}
	a.Touch()
	a.IncrementVersion()
	a.AddDomainEvent(NewAssetDepreciationAppliedEvent(a, amount))
	return nil
}

// Dispose marks the asset as disposed. Disposing twice is rejected.
func (a *Asset) Dispose(at time.Time) error {
	if a.Status == AssetStatusDisposed {
		return shared.ErrInvalidState
	}
	a.Status = AssetStatusDisposed
	a.DisposedAt = &at
	a.Touch()
	a.IncrementVersion()
	a.AddDomainEvent(NewAssetDisposedEvent(a))
	return nil
}
