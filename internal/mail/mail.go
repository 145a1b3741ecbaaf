// Package mail delivers generated documents as email attachments.
package mail

import (
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
)

// ---------------------------------------------------------------------------
// Email
// ---------------------------------------------------------------------------

// SMTP holds the server settings for outgoing mail.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Attachment is an in-memory file to send.
type Attachment struct {
	Filename string
	Data     []byte
}

// Send mails the given documents as attachments.
func Send(smtp SMTP, from, to, subject string, attachments ...Attachment) error {
	if smtp.Host == "" {
		return fmt.Errorf("no SMTP host configured")
	}

	msg := message(from, to, subject, attachments)
	dialer := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
	return dialer.DialAndSend(msg)
}

// message assembles the outgoing mail with in-memory attachments.
func message(from, to, subject string, attachments []Attachment) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", "Documentos adjuntos.<br>")

	for _, a := range attachments {
		data := a.Data
		msg.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}
	return msg
}
