package queries

import (
	"encoding/json"

	"caisse/internal/core/domain/model/cart"
	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/product"
)

// cartLineRow mirrors the JSON shape of a persisted cart/order line. The
// keys must stay in sync with the repository DTOs.
type cartLineRow struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	PriceMillimes int64  `json:"price_millimes"`
	Category      string `json:"category"`
	VatRate       int    `json:"vat_rate"`
	Image         string `json:"image"`
	Quantity      int    `json:"quantity"`
}

// vatBucketRow mirrors the JSON shape of a persisted VAT bucket.
type vatBucketRow struct {
	Rate           int   `json:"rate"`
	AmountMillimes int64 `json:"amount_millimes"`
}

func (r cartLineRow) toDomainLine() (cart.Line, error) {
	price, err := kernel.NewMoneyFromMillimes(r.PriceMillimes)
	if err != nil {
		return cart.Line{}, err
	}

	rate, err := kernel.NewVatRate(r.VatRate)
	if err != nil {
		return cart.Line{}, err
	}

	p, err := product.NewProduct(r.ProductID, r.Name, price, r.Category, rate, r.Image)
	if err != nil {
		return cart.Line{}, err
	}

	return cart.NewLine(p, r.Quantity)
}

func cartLinesFromJSON(data []byte) ([]cart.Line, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var rows []cartLineRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(rows))
	for _, row := range rows {
		line, err := row.toDomainLine()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func vatBucketsFromJSON(data []byte) ([]VatBucketResponse, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var rows []vatBucketRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}

	buckets := make([]VatBucketResponse, 0, len(rows))
	for _, row := range rows {
		rate, err := kernel.NewVatRate(row.Rate)
		if err != nil {
			return nil, err
		}

		amount, err := kernel.NewMoneyFromMillimes(row.AmountMillimes)
		if err != nil {
			return nil, err
		}

		buckets = append(buckets, VatBucketResponse{Rate: rate, Amount: amount})
	}

	return buckets, nil
}

func stringsFromJSON(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, err
	}

	return names, nil
}

func cartLineResponses(lines []cart.Line) []CartLineResponse {
	responses := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		responses = append(responses, CartLineResponse{
			ProductID: line.Product().ID(),
			Name:      line.Product().Name(),
			UnitPrice: line.Product().Price(),
			VatRate:   line.Product().VatRate(),
			Quantity:  line.Quantity(),
			Subtotal:  line.Subtotal(),
		})
	}
	return responses
}
