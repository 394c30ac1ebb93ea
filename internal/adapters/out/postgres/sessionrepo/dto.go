// Package sessionrepo persists the single terminal session snapshot.
// The session is stored as one row keyed by a fixed identifier: the open
// cart as a JSON column, plus the current table selection, the active
// server and the selected customer.
package sessionrepo

import (
	"fmt"

	"caisse/internal/core/domain/model/cart"
	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/product"
	"caisse/internal/core/domain/model/session"
	"caisse/internal/pkg/errs"
)

// snapshotID is the fixed primary key of the single session row.
const snapshotID = 1

// schemaVersion marks the layout of the persisted snapshot so a future
// migration can detect and upgrade stale rows.
const schemaVersion = 1

// SessionDTO represents the database structure for the session snapshot.
// The cart lines JSON keys match the order snapshot columns and are read
// directly by the query side.
type SessionDTO struct {
	ID               int `gorm:"primaryKey"`
	SchemaVersion    int
	CartLines        []LineDTO `gorm:"serializer:json"`
	CurrentTable     *int
	Server           string
	SelectedCustomer *string
}

// TableName specifies the database table name for the session snapshot.
func (SessionDTO) TableName() string {
	return "sessions"
}

// LineDTO is one open cart line inside the JSON snapshot.
type LineDTO struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	PriceMillimes int64  `json:"price_millimes"`
	Category      string `json:"category"`
	VatRate       int    `json:"vat_rate"`
	Image         string `json:"image"`
	Quantity      int    `json:"quantity"`
}

// fromDomain converts the session aggregate to its database representation.
func fromDomain(s *session.Session) SessionDTO {
	var currentTable *int
	if number := s.CurrentTable(); number != nil {
		n := number.Int()
		currentTable = &n
	}

	return SessionDTO{
		ID:               snapshotID,
		SchemaVersion:    schemaVersion,
		CartLines:        linesFromDomain(s.CartLines()),
		CurrentTable:     currentTable,
		Server:           s.Server(),
		SelectedCustomer: s.SelectedCustomer(),
	}
}

// toDomain converts a database DTO to the session aggregate using
// RestoreSession. A snapshot written by a newer schema is rejected rather
// than silently misread.
func toDomain(dto SessionDTO) (*session.Session, error) {
	if dto.SchemaVersion != schemaVersion {
		return nil, errs.NewVersionIsInvalidError(
			"schema_version",
			fmt.Errorf("snapshot schema version %d, want %d", dto.SchemaVersion, schemaVersion),
		)
	}

	lines, err := linesToDomain(dto.CartLines)
	if err != nil {
		return nil, err
	}

	var currentTable *kernel.TableNumber
	if dto.CurrentTable != nil {
		number, tableErr := kernel.NewTableNumber(*dto.CurrentTable)
		if tableErr != nil {
			return nil, tableErr
		}

		currentTable = &number
	}

	return session.RestoreSession(lines, currentTable, dto.Server, dto.SelectedCustomer)
}

func linesFromDomain(lines []cart.Line) []LineDTO {
	dtos := make([]LineDTO, 0, len(lines))
	for _, l := range lines {
		p := l.Product()
		dtos = append(dtos, LineDTO{
			ProductID:     p.ID(),
			Name:          p.Name(),
			PriceMillimes: p.Price().Millimes(),
			Category:      p.Category(),
			VatRate:       p.VatRate().Percent(),
			Image:         p.Image(),
			Quantity:      l.Quantity(),
		})
	}
	return dtos
}

func linesToDomain(dtos []LineDTO) ([]cart.Line, error) {
	lines := make([]cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		price, err := kernel.NewMoneyFromMillimes(dto.PriceMillimes)
		if err != nil {
			return nil, err
		}

		rate, err := kernel.NewVatRate(dto.VatRate)
		if err != nil {
			return nil, err
		}

		p, err := product.NewProduct(dto.ProductID, dto.Name, price, dto.Category, rate, dto.Image)
		if err != nil {
			return nil, err
		}

		line, err := cart.NewLine(p, dto.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
