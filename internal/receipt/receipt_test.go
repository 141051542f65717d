package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jerseystore/internal/models"
)

func sampleOrder(itemCount int) *models.Order {
	items := make([]models.OrderItem, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		items = append(items, models.OrderItem{
			ID:       "prod1",
			Name:     "ProFlex Running Jersey",
			Price:    49.99,
			Quantity: 2,
			Subtotal: 99.98,
		})
	}
	return &models.Order{
		OrderID:       "JS-1700000000000-123",
		Items:         items,
		TotalAmount:   99.98 * float64(itemCount),
		CustomerName:  "Ada Obi",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "+2348000000000",
		Status:        models.OrderStatusReceived,
		CreatedAt:     time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer("Sports Jersey Store")

	data, err := r.Render(sampleOrder(3))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, len(data) > 4 && string(data[:5]) == "%PDF-", "output should be a PDF document")
}

func TestRenderSinglePageForShortOrder(t *testing.T) {
	r := NewRenderer("Sports Jersey Store")

	pdf := r.build(sampleOrder(3))
	assert.Equal(t, 1, pdf.PageCount())
}

func TestRenderPaginatesLongItemList(t *testing.T) {
	r := NewRenderer("Sports Jersey Store")

	// A4 is 842pt tall; the item cursor starts around 190pt and each
	// line is 18pt, so 60 items must spill onto a second page.
	pdf := r.build(sampleOrder(60))
	assert.GreaterOrEqual(t, pdf.PageCount(), 2)
}

func TestRenderEmptyPhoneStillRenders(t *testing.T) {
	r := NewRenderer("Sports Jersey Store")

	order := sampleOrder(1)
	order.CustomerPhone = ""
	data, err := r.Render(order)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}
