// Package tablerepo provides data transfer objects and mapping functions for table persistence.
// This package implements the repository pattern for the table domain aggregate, handling
// the conversion between domain entities and database representations.
package tablerepo

import (
	"time"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for persisting table aggregates.
// The primary key is the deterministic "TABLE-<number>" identifier; the
// seated client names are stored as a JSON column read directly by the
// query side.
type TableDTO struct {
	ID             string   `gorm:"primaryKey"`
	Number         int      `gorm:"uniqueIndex"`
	Status         int
	Clients        []string `gorm:"serializer:json"`
	Server         *string
	CurrentOrderID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for table entities.
// Overrides GORM's default naming convention to use "tables".
func (TableDTO) TableName() string {
	return "tables"
}

// fromDomain converts a table domain aggregate to its database representation.
func fromDomain(t *table.Table) TableDTO {
	var currentOrderID *uuid.UUID
	if id := t.CurrentOrderID(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return TableDTO{
		ID:             t.ID(),
		Number:         t.Number().Int(),
		Status:         int(t.Status()),
		Clients:        t.Clients(),
		Server:         t.Server(),
		CurrentOrderID: currentOrderID,
		CreatedAt:      t.CreatedAt(),
	}
}

// toDomain converts a database DTO to a table domain aggregate.
// Reconstructs the complete aggregate including status and the open-order
// reference using RestoreTable.
func toDomain(dto TableDTO) (*table.Table, error) {
	number, err := kernel.NewTableNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		id, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		currentOrderID = &id
	}

	return table.RestoreTable(
		number,
		table.Status(dto.Status),
		dto.Clients,
		dto.Server,
		currentOrderID,
		dto.CreatedAt,
	)
}
