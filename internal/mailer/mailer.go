package mailer

import "context"

type Service interface {
	Send(ctx context.Context, e Email) error
}

type Email struct {
	FromName string // opcional: "Comercial Soares"
	From     string // obrigatório: "pedidos@comercialsoares.com"

	To  []string
	Cc  []string
	Bcc []string

	Subject string

	TextBody string
	HTMLBody string

	Attachments []Attachment

	Headers map[string]string // headers extras (opcional)
}

// Attachment carries an inline document, typically the receipt PDF.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (e Email) AllRecipients() []string {
	out := make([]string, 0, len(e.To)+len(e.Cc)+len(e.Bcc))
	out = append(out, e.To...)
	out = append(out, e.Cc...)
	out = append(out, e.Bcc...)
	return out
}
