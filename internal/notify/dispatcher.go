package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log"

	"jerseystore/internal/mailer"
	"jerseystore/internal/models"
	"jerseystore/internal/receipt"
	"jerseystore/internal/repositories"
)

// confirmationTemplate renders the HTML body shared by the customer
// confirmation and the admin alert.
var confirmationTemplate = template.Must(template.New("order_confirmation").Parse(`<html>
<body>
  <h2>Order Confirmation</h2>
  <p>Thank you for your order, {{.Order.CustomerName}}!</p>
  <p><strong>Order ID:</strong> {{.Order.OrderID}}<br>
     <strong>Date:</strong> {{.Order.CreatedAt.Format "2006-01-02 15:04"}}<br>
     <strong>Status:</strong> {{.Order.Status}}<br>
     <strong>Payment Method:</strong> {{.Order.PaymentMethod}}</p>
  <table border="1" cellpadding="6" cellspacing="0">
    <tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Subtotal</th></tr>
    {{range .Order.Items}}
    <tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>&#8358;{{printf "%.2f" .Price}}</td><td>&#8358;{{printf "%.2f" .Subtotal}}</td></tr>
    {{end}}
  </table>
  <p><strong>Total: &#8358;{{printf "%.2f" .Order.TotalAmount}}</strong></p>
  <p>Regards,<br>{{.StoreName}} Team</p>
</body>
</html>`))

// Dispatcher renders and sends order notification emails. It is driven
// by order-created events, either from the RabbitMQ consumer or from
// the in-process Worker.
type Dispatcher struct {
	orders    repositories.OrderRepository
	receipts  *receipt.Renderer
	mail      mailer.Sender
	storeName string
	from      string
	admin     string
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(orders repositories.OrderRepository, receipts *receipt.Renderer, mail mailer.Sender, storeName, from, admin string) *Dispatcher {
	return &Dispatcher{
		orders:    orders,
		receipts:  receipts,
		mail:      mail,
		storeName: storeName,
		from:      from,
		admin:     admin,
	}
}

// HandleEvent decodes an order-created event and dispatches its emails.
// It is shaped to serve as the message handler for the queue consumer.
func (d *Dispatcher) HandleEvent(body []byte) error {
	var event models.OrderCreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode order event: %w", err)
	}
	return d.DispatchOrderEmails(event.OrderID)
}

// DispatchOrderEmails loads an order and sends the confirmation email
// to the customer (with the PDF receipt attached) and an alert to the
// store admin. The two sends are independent; an error is returned
// only when the order cannot be loaded or rendered, or when both sends
// fail. Callers log the error and move on: notification delivery is
// best-effort and never affects the persisted order.
func (d *Dispatcher) DispatchOrderEmails(orderID string) error {
	order, err := d.orders.GetByOrderID(orderID)
	if err != nil {
		return fmt.Errorf("failed to load order for notification: %w", err)
	}

	for i := range order.Items {
		order.Items[i].Subtotal = order.Items[i].Price * float64(order.Items[i].Quantity)
	}

	var buf bytes.Buffer
	data := struct {
		Order     *models.Order
		StoreName string
	}{order, d.storeName}
	if err := confirmationTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render confirmation email for order %s: %w", orderID, err)
	}
	html := buf.String()

	pdfData, err := d.receipts.Render(order)
	if err != nil {
		// Send the confirmation without the attachment rather than
		// dropping the notification entirely.
		log.Printf("Warning: failed to render receipt for order %s: %v", orderID, err)
		pdfData = nil
	}

	subject := fmt.Sprintf("Order Confirmation - #%s", order.OrderID)
	customerSent := d.mail.Send(d.from, order.CustomerEmail, subject, html, pdfData, fmt.Sprintf("receipt-%s.pdf", order.OrderID))

	adminSent := false
	if d.admin != "" {
		adminSent = d.mail.Send(d.from, d.admin, fmt.Sprintf("New Order Received - %s", order.OrderID), html, nil, "")
	}

	if !customerSent && !adminSent {
		return fmt.Errorf("all notification emails failed for order %s", orderID)
	}
	return nil
}
