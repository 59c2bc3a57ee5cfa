package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	apppayments "github.com/crunchyspot/crunchyspot-api/internal/application/payments"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que MailgunSender implementa Mailer.
var _ apppayments.Mailer = (*MailgunSender)(nil)

const receiptSubject = "Tu recibo de CrunchySpot"

// Cuerpo HTML del recibo. Texto breve: el detalle vive en la app.
const receiptTemplate = `<html>
<body>
  <h2>¡Gracias por tu orden!</h2>
  <p>Registramos tu pago por <strong>${{printf "%.2f" .Price}}</strong>.</p>
  <p>Transacción: <code>{{.TransactionID}}</code></p>
  <p>Platos: {{len .MenuItemIDs}} &middot; Fecha: {{.Date.Format "2006-01-02 15:04"}}</p>
  <p>CrunchySpot</p>
</body>
</html>`

// MailgunSender despachador de recibos transaccionales sobre Mailgun.
type MailgunSender struct {
	mg     *mailgun.MailgunImpl
	sender string
	tmpl   *template.Template
}

// NewMailgunSender construye el despachador. El template se parsea una vez;
// un template inválido es un bug de compilación, de ahí el Must.
func NewMailgunSender(domain, apiKey, sender string) *MailgunSender {
	return &MailgunSender{
		mg:     mailgun.NewMailgun(domain, apiKey),
		sender: sender,
		tmpl:   template.Must(template.New("receipt").Parse(receiptTemplate)),
	}
}

// SendReceipt envía el recibo del pago. El caller lo invoca desacoplado del
// request: un error aquí se loguea arriba y jamás afecta al pago registrado.
func (s *MailgunSender) SendReceipt(to string, payment *entity.Payment) error {
	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, payment); err != nil {
		return fmt.Errorf("render recibo: %w", err)
	}

	msg := s.mg.NewMessage(s.sender, receiptSubject, "", to)
	msg.SetHtml(body.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, _, err := s.mg.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}
