package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"jerseystore/internal/models"
)

// Layout constants, in points on an A4 page.
const (
	leftMargin   = 50
	topMargin    = 50
	bottomMargin = 100
	lineHeight   = 18
)

// Renderer produces PDF order receipts.
type Renderer struct {
	storeName string
}

// NewRenderer creates a receipt Renderer for the given store name.
func NewRenderer(storeName string) *Renderer {
	return &Renderer{storeName: storeName}
}

// Render produces the PDF receipt for an order. Items must carry their
// precomputed subtotals. Amounts are prefixed with "NGN" since the
// naira glyph is outside the core-font codepage.
func (r *Renderer) Render(order *models.Order) ([]byte, error) {
	pdf := r.build(order)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt for order %s: %w", order.OrderID, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) build(order *models.Order) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Receipt - %s", order.OrderID), true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	_, pageHeight := pdf.GetPageSize()

	y := float64(topMargin)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(leftMargin, y, fmt.Sprintf("%s - Order Receipt", r.storeName))
	y += 30

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(leftMargin, y, fmt.Sprintf("Order ID: %s", order.OrderID))
	y += 20
	pdf.Text(leftMargin, y, fmt.Sprintf("Date: %s", order.CreatedAt.Format("2006-01-02 15:04")))
	y += 20
	pdf.Text(leftMargin, y, fmt.Sprintf("Customer: %s", order.CustomerName))
	y += 20
	pdf.Text(leftMargin, y, fmt.Sprintf("Email: %s", order.CustomerEmail))
	y += 20
	pdf.Text(leftMargin, y, fmt.Sprintf("Phone: %s", order.CustomerPhone))
	y += 30

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(leftMargin, y, "Items:")
	y += 20

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range order.Items {
		pdf.Text(leftMargin+10, y, fmt.Sprintf("%d x %s - NGN %.2f", item.Quantity, item.Name, item.Subtotal))
		y += lineHeight
		// Greedy pagination: start a new page once the cursor gets
		// within the bottom margin, and reset it to the top.
		if y > pageHeight-bottomMargin {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 11)
			y = topMargin
		}
	}

	y += 10
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(leftMargin, y, fmt.Sprintf("Total Amount: NGN %.2f", order.TotalAmount))

	return pdf
}
