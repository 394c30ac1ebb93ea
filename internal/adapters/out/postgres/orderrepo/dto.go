// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"caisse/internal/core/domain/model/cart"
	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/order"
	"caisse/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The frozen cart snapshot (lines, client names, VAT breakdown) is stored in
// JSON columns; the read-side queries scan those columns directly, so the
// JSON keys are part of the persistence contract.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableNumber   int       `gorm:"index"`
	ClientNames   []string  `gorm:"serializer:json"`
	Lines         []LineDTO `gorm:"serializer:json"`
	TotalMillimes int64
	VatBreakdown  []VatBucketDTO `gorm:"serializer:json"`
	Status        int            `gorm:"index"`
	Server        string
	CreatedAt     time.Time
	PaidAt        *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is one frozen cart line inside the JSON snapshot.
type LineDTO struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	PriceMillimes int64  `json:"price_millimes"`
	Category      string `json:"category"`
	VatRate       int    `json:"vat_rate"`
	Image         string `json:"image"`
	Quantity      int    `json:"quantity"`
}

// VatBucketDTO is one per-rate tax bucket inside the JSON snapshot.
type VatBucketDTO struct {
	Rate           int   `json:"rate"`
	AmountMillimes int64 `json:"amount_millimes"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID().Bytes(),
		TableNumber:   o.TableNumber().Int(),
		ClientNames:   o.ClientNames(),
		Lines:         linesFromDomain(o.Lines()),
		TotalMillimes: o.Total().Millimes(),
		VatBreakdown:  bucketsFromDomain(o.VatBreakdown()),
		Status:        int(o.Status()),
		Server:        o.Server(),
		CreatedAt:     o.CreatedAt(),
		PaidAt:        o.PaidAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and payment timestamp using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewTableNumber(dto.TableNumber)
	if err != nil {
		return nil, err
	}

	lines, err := linesToDomain(dto.Lines)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoneyFromMillimes(dto.TotalMillimes)
	if err != nil {
		return nil, err
	}

	buckets, err := bucketsToDomain(dto.VatBreakdown)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		number,
		lines,
		total,
		buckets,
		dto.ClientNames,
		dto.Server,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.PaidAt,
	)
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

func bucketsFromDomain(buckets []cart.VatBucket) []VatBucketDTO {
	dtos := make([]VatBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		dtos = append(dtos, VatBucketDTO{
			Rate:           b.Rate().Percent(),
			AmountMillimes: b.Amount().Millimes(),
		})
	}
	return dtos
}

func bucketsToDomain(dtos []VatBucketDTO) ([]cart.VatBucket, error) {
	buckets := make([]cart.VatBucket, 0, len(dtos))
	for _, dto := range dtos {
		rate, err := kernel.NewVatRate(dto.Rate)
		if err != nil {
			return nil, err
		}

		amount, err := kernel.NewMoneyFromMillimes(dto.AmountMillimes)
		if err != nil {
			return nil, err
		}

		bucket, err := cart.NewVatBucket(rate, amount)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}
