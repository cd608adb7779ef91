package calculator

import "context"

// OutgoingMail mensaje listo para entregar al colaborador de correo.
type OutgoingMail struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

// Mailer puerto del transporte de correo. El envío es síncrono y sin
// reintentos; un fallo se reporta como error terminal de la petición.
type Mailer interface {
	Send(ctx context.Context, mail OutgoingMail) error
}

// QuoteItem renglón del cálculo tal como se imprime en la cotización PDF.
type QuoteItem struct {
	Quantity     string
	PricePerUnit string
	ItemTotal    string
}

// QuotePDFGenerator puerto del generador de la cotización en PDF que se
// adjunta al correo.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, items []QuoteItem, grandTotal string) ([]byte, error)
}
