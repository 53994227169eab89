package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIMEMessageWithAttachment(t *testing.T) {
	raw, err := buildMIMEMessage(Email{
		From:     "pedidos@comercialsoares.com",
		FromName: "Comercial Soares",
		To:       []string{"maria@example.com"},
		Subject:  "Pedido Nº 42",
		TextBody: "Segue o recibo em anexo.",
		Attachments: []Attachment{
			{Filename: "pedido_42.pdf", ContentType: "application/pdf", Data: []byte("%PDF-fake")},
		},
	}, "comercialsoares.com")
	require.NoError(t, err)

	assert.Contains(t, raw, "multipart/mixed")
	assert.Contains(t, raw, `Content-Disposition: attachment; filename="pedido_42.pdf"`)
	assert.Contains(t, raw, "Content-Transfer-Encoding: base64")
	assert.Contains(t, raw, "To: maria@example.com")
}

func TestBuildMIMEMessageValidation(t *testing.T) {
	_, err := buildMIMEMessage(Email{From: "a@b.c", Subject: "x", TextBody: "y"}, "d")
	assert.Error(t, err, "missing recipient")

	_, err = buildMIMEMessage(Email{To: []string{"a@b.c"}, Subject: "x", TextBody: "y"}, "d")
	assert.Error(t, err, "missing from")

	_, err = buildMIMEMessage(Email{To: []string{"a@b.c"}, From: "a@b.c", Subject: "x"}, "d")
	assert.Error(t, err, "missing body")
}

func TestBuildMIMEMessageTextOnly(t *testing.T) {
	raw, err := buildMIMEMessage(Email{
		From:     "a@b.c",
		To:       []string{"x@y.z"},
		Subject:  "oi",
		TextBody: "corpo",
	}, "b.c")
	require.NoError(t, err)
	assert.True(t, strings.Contains(raw, "Content-Type: text/plain; charset=UTF-8"))
	assert.NotContains(t, raw, "multipart")
}
