package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/notification"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/payment"
	"gestion/internal/core/domain/model/product"
)

var (
	statusChangedTmpl = template.Must(template.New("status").Parse(
		`<p>O pedido <strong>{{.Number}}</strong> ({{.Client}}) passou de {{.From}} para <strong>{{.To}}</strong>.</p>` +
			`{{if .OutOfOrder}}<p>Alteração fora de ordem.</p>{{end}}` +
			`<p><a href="{{.URL}}">Abrir pedido</a></p>`))

	paymentRecordedTmpl = template.Must(template.New("payment").Parse(
		`<p>Pagamento de <strong>{{.Amount}} €</strong> ({{.Method}}) registado no pedido {{.Number}}.</p>` +
			`<p>Cliente: {{.Client}}<br>Fornecedor: {{.Supplier}}</p>` +
			`<p>Em dívida: {{.Outstanding}} €</p>` +
			`<p><a href="{{.URL}}">Abrir pedido</a></p>`))

	lowStockTmpl = template.Must(template.New("stock").Parse(
		`<p>Produtos com stock abaixo de {{.Threshold}} unidades:</p><ul>` +
			`{{range .Lines}}<li>{{.}}</li>{{end}}</ul>`))
)

// NotificationComposer renders outbox messages for business events.
type NotificationComposer struct {
	baseURL string
}

// NewNotificationComposer builds links to orders under baseURL.
func NewNotificationComposer(baseURL string) NotificationComposer {
	return NotificationComposer{baseURL: strings.TrimRight(baseURL, "/")}
}

func (c NotificationComposer) orderURL(id kernel.UUID) string {
	return fmt.Sprintf("%s/orders/%s", c.baseURL, id)
}

// OrderStatusChanged composes the single message enqueued per transition.
func (c NotificationComposer) OrderStatusChanged(
	o *order.Order,
	change *order.StatusChange,
	clientName string,
	now time.Time,
) (*notification.Message, error) {
	url := c.orderURL(o.ID())
	body, err := render(statusChangedTmpl, map[string]any{
		"Number":     o.Number(),
		"Client":     clientName,
		"From":       change.From().String(),
		"To":         change.To().String(),
		"OutOfOrder": change.OutOfOrder(),
		"URL":        url,
	})
	if err != nil {
		return nil, err
	}

	return notification.NewMessage(
		kernel.NewUUID(),
		notification.OrderStatusChanged,
		fmt.Sprintf("Pedido %s: %s", o.Number(), change.To()),
		body,
		notification.Push{
			Title: fmt.Sprintf("Pedido %s", o.Number()),
			Body:  fmt.Sprintf("%s → %s", change.From(), change.To()),
			URL:   url,
			Tag:   "order-" + o.ID().String(),
		},
		nil,
		now,
	)
}

// PaymentRecorded names the client, the supplier and the amount.
func (c NotificationComposer) PaymentRecorded(
	o *order.Order,
	p *payment.Payment,
	clientName string,
	supplierName string,
	now time.Time,
) (*notification.Message, error) {
	url := c.orderURL(o.ID())
	amount := p.Amount().StringFixed(2)
	body, err := render(paymentRecordedTmpl, map[string]any{
		"Amount":      amount,
		"Method":      p.Method().String(),
		"Number":      o.Number(),
		"Client":      clientName,
		"Supplier":    supplierName,
		"Outstanding": o.Outstanding().StringFixed(2),
		"URL":         url,
	})
	if err != nil {
		return nil, err
	}

	return notification.NewMessage(
		kernel.NewUUID(),
		notification.PaymentRecorded,
		fmt.Sprintf("Pagamento %s € - %s (%s)", amount, clientName, o.Number()),
		body,
		notification.Push{
			Title: "Pagamento registado",
			Body:  fmt.Sprintf("%s € de %s", amount, clientName),
			URL:   url,
			Tag:   "payment-" + p.ID().String(),
		},
		nil,
		now,
	)
}

// LowStock summarizes every product with a shortage in one message.
// Returns (nil, nil) when no product is short.
func (c NotificationComposer) LowStock(products []*product.Product, now time.Time) (*notification.Message, error) {
	var lines []string
	for _, p := range products {
		shortages := p.LowStock()
		if len(shortages) == 0 {
			continue
		}
		parts := make([]string, 0, len(shortages))
		for _, s := range shortages {
			parts = append(parts, fmt.Sprintf("%s %d", s.Counter, s.Level))
		}
		lines = append(lines, fmt.Sprintf("%s: %s", p.Name(), strings.Join(parts, ", ")))
	}
	if len(lines) == 0 {
		return nil, nil
	}

	body, err := render(lowStockTmpl, map[string]any{
		"Threshold": product.LowStockThreshold,
		"Lines":     lines,
	})
	if err != nil {
		return nil, err
	}

	return notification.NewMessage(
		kernel.NewUUID(),
		notification.LowStock,
		fmt.Sprintf("Stock baixo em %d produto(s)", len(lines)),
		body,
		notification.Push{
			Title: "Stock baixo",
			Body:  strings.Join(lines, "; "),
			URL:   c.baseURL + "/products?lowStock=true",
			Tag:   "low-stock",
		},
		nil,
		now,
	)
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
