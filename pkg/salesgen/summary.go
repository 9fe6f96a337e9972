package salesgen

import (
	"github.com/maxixo/dataworld/pkg/models"
	"github.com/montanaflynn/stats"
)

// Summary holds aggregate figures over a set of orders, rounded to cents.
type Summary struct {
	Orders       int
	Revenue      float64
	MeanOrder    float64
	MedianOrder  float64
	MeanShipping float64
}

// Summarize computes revenue and order value statistics.
func Summarize(orders []models.Order) (Summary, error) {
	if len(orders) == 0 {
		return Summary{}, nil
	}

	totals := make([]float64, len(orders))
	shipping := make([]float64, len(orders))
	for i, o := range orders {
		totals[i] = o.TotalAmount
		shipping[i] = o.ShippingCost
	}

	revenue, err := stats.Sum(totals)
	if err != nil {
		return Summary{}, err
	}
	mean, err := stats.Mean(totals)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(totals)
	if err != nil {
		return Summary{}, err
	}
	meanShipping, err := stats.Mean(shipping)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Orders:       len(orders),
		Revenue:      round2(revenue),
		MeanOrder:    round2(mean),
		MedianOrder:  round2(median),
		MeanShipping: round2(meanShipping),
	}, nil
}
