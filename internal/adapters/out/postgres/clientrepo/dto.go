// Package clientrepo provides data transfer objects and mapping functions for client persistence.
// This package implements the repository pattern for the client roster, handling
// the conversion between domain entities and database representations.
package clientrepo

import (
	"time"

	"caisse/internal/core/domain/model/client"
	"caisse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting client entries.
type ClientDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	Phone              *string
	Email              *string
	TableNumber        *int
	TotalSpentMillimes int64
	Visits             int
	CreatedAt          time.Time
}

// TableName specifies the database table name for client entities.
// Overrides GORM's default naming convention to use "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client domain entity to its database representation.
func fromDomain(c *client.Client) ClientDTO {
	var tableNumber *int
	if number := c.TableNumber(); number != nil {
		n := number.Int()
		tableNumber = &n
	}

	return ClientDTO{
		ID:                 c.ID().Bytes(),
		Name:               c.Name(),
		Phone:              c.Phone(),
		Email:              c.Email(),
		TableNumber:        tableNumber,
		TotalSpentMillimes: c.TotalSpent().Millimes(),
		Visits:             c.Visits(),
		CreatedAt:          c.CreatedAt(),
	}
}

// toDomain converts a database DTO to a client domain entity.
// Reconstructs the complete entity including lifetime counters using RestoreClient.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableNumber *kernel.TableNumber
	if dto.TableNumber != nil {
		number, tableErr := kernel.NewTableNumber(*dto.TableNumber)
		if tableErr != nil {
			return nil, tableErr
		}

		tableNumber = &number
	}

	totalSpent, err := kernel.NewMoneyFromMillimes(dto.TotalSpentMillimes)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(
		id,
		dto.Name,
		dto.Phone,
		dto.Email,
		tableNumber,
		totalSpent,
		dto.Visits,
		dto.CreatedAt,
	)
}
