package mail

import (
	"bytes"
	"strings"
	"testing"
)

func TestSendRequiresHost(t *testing.T) {
	err := Send(SMTP{}, "a@example.com", "b@example.com", "Contrato")
	if err == nil {
		t.Fatal("Send: expected error without SMTP host")
	}
	if !strings.Contains(err.Error(), "no SMTP host") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestMessage(t *testing.T) {
	msg := message("maria@example.com", "archivo@example.com", "Contrato de alquiler",
		[]Attachment{{Filename: "Contrato.pdf", Data: []byte("%PDF-1.4 test")}})

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	raw := buf.String()
	for _, want := range []string{
		"From: maria@example.com",
		"To: archivo@example.com",
		"Subject: Contrato de alquiler",
		"Contrato.pdf",
		"Documentos adjuntos.",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q", want)
		}
	}
}
