package salesgen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/maxixo/dataworld/internal/logging"
	"github.com/maxixo/dataworld/pkg/models"
)

// Value ranges for sampled numeric fields.
const (
	minQuantity = 1
	maxQuantity = 10
	minPrice    = 10.00
	maxPrice    = 500.00
	minShipping = 5.00
	maxShipping = 25.00
)

// Headers are the column labels of a sales fixture, in column order.
var Headers = []string{
	"Order ID",
	"Customer Name",
	"Product Category",
	"Product Name",
	"Quantity",
	"Unit Price",
	"Total Amount",
	"Order Date",
	"Region",
	"Status",
	"Payment Method",
	"Shipping Cost",
}

// ColumnWidths are the display widths of columns A through L.
var ColumnWidths = []float64{12, 18, 16, 18, 10, 12, 14, 12, 10, 12, 18, 14}

// Fixture is a generated set of orders.
type Fixture struct {
	// ID identifies the fixture; it is derived from the seed, so seeded
	// fixtures keep their id across runs.
	ID uuid.UUID
	// Seed is the seed the generator actually used.
	Seed int64
	// Orders are the generated records in row order.
	Orders []models.Order
}

// Generate samples opts.Rows orders. Every field is drawn independently.
func Generate(opts Options) (*Fixture, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := logging.OrNull(opts.Logger)
	cat := opts.catalog()

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, fmt.Errorf("failed to derive fixture id: %w", err)
	}

	orders := make([]models.Order, opts.Rows)
	for i := range orders {
		// Data starts on the second sheet row; order ids carry that row number.
		rowNum := i + 2

		category := pick(rng, cat.Categories)
		quantity := minQuantity + rng.Intn(maxQuantity-minQuantity+1)
		unitPrice := round2(minPrice + rng.Float64()*(maxPrice-minPrice))

		orders[i] = models.Order{
			OrderID:       fmt.Sprintf("ORD-%05d", rowNum),
			CustomerName:  pick(rng, cat.Customers),
			Category:      category,
			ProductName:   pick(rng, cat.Products[category]),
			Quantity:      quantity,
			UnitPrice:     unitPrice,
			TotalAmount:   round2(float64(quantity) * unitPrice),
			OrderDate:     opts.BaseDate.AddDate(0, 0, rng.Intn(opts.DateSpanDays)),
			Region:        pick(rng, cat.Regions),
			Status:        pick(rng, cat.Statuses),
			PaymentMethod: pick(rng, cat.PaymentMethods),
			ShippingCost:  round2(minShipping + rng.Float64()*(maxShipping-minShipping)),
		}
	}

	log.Debug("generated orders", "rows", len(orders), "seed", seed, "id", id.String())

	return &Fixture{
		ID:     id,
		Seed:   seed,
		Orders: orders,
	}, nil
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

// round2 rounds x to 2 decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
