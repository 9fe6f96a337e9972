package salesgen

import (
	"testing"

	"github.com/maxixo/dataworld/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	orders := []models.Order{
		{TotalAmount: 100.00, ShippingCost: 5.00},
		{TotalAmount: 20.50, ShippingCost: 10.00},
		{TotalAmount: 40.25, ShippingCost: 6.00},
	}

	s, err := Summarize(orders)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Orders)
	assert.Equal(t, 160.75, s.Revenue)
	assert.Equal(t, 53.58, s.MeanOrder)
	assert.Equal(t, 40.25, s.MedianOrder)
	assert.Equal(t, 7.0, s.MeanShipping)
}

func TestSummarize_Empty(t *testing.T) {
	s, err := Summarize(nil)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, s)
}
