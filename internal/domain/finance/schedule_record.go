package finance

import (
	"github.com/finware/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ScheduleRecord is a persisted snapshot of a computed depreciation
// schedule for an asset. The schedule itself is a pure value; the
// record adds identity so callers can retrieve what was computed.
type ScheduleRecord struct {
	shared.BaseEntity
	TenantID uuid.UUID
	AssetID  uuid.UUID
	Schedule Schedule
}

// NewScheduleRecord creates a new schedule record for an asset
func NewScheduleRecord(tenantID, assetID uuid.UUID, schedule Schedule) *ScheduleRecord {
	return &ScheduleRecord{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantID,
		AssetID:    assetID,
		Schedule:   schedule,
	}
}
