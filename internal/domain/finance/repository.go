package finance

import (
	"context"

	"github.com/google/uuid"
)

// AssetFilter defines filtering options for asset queries
type AssetFilter struct {
	Status   AssetStatus
	Search   string
	Page     int
	PageSize int
}

// AssetRepository defines the interface for asset persistence
type AssetRepository interface {
	// Save persists an asset (create or update)
	Save(ctx context.Context, asset *Asset) error

	// FindByID finds an asset by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// FindByIDForTenant finds an asset by ID scoped to a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Asset, error)

	// FindByAssetNumber finds an asset by its business number
	FindByAssetNumber(ctx context.Context, tenantID uuid.UUID, assetNumber string) (*Asset, error)

	// FindAllForTenant finds all assets for a tenant matching the filter
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter AssetFilter) ([]Asset, error)

	// CountForTenant counts assets for a tenant matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter AssetFilter) (int64, error)

	// GenerateAssetNumber generates the next asset number for a tenant
	GenerateAssetNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}

// ScheduleRepository defines the interface for depreciation schedule
// snapshot persistence
type ScheduleRepository interface {
	// Save persists a schedule record
	Save(ctx context.Context, record *ScheduleRecord) error

	// FindByID finds a schedule record by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ScheduleRecord, error)

	// FindLatestForAsset finds the most recently computed schedule for an asset
	FindLatestForAsset(ctx context.Context, tenantID, assetID uuid.UUID) (*ScheduleRecord, error)
}
