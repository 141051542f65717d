package mailer

import (
	"io"
	"log"

	gomail "gopkg.in/gomail.v2"
)

// Sender delivers a single HTML email, optionally with a binary
// attachment. It returns a success flag rather than an error: transport
// failures are logged and converted to false, never raised past this
// boundary. One synchronous attempt per call, no retry, no queue.
type Sender interface {
	Send(from, to, subject, htmlBody string, attachment []byte, filename string) bool
}

// SMTPMailer sends email over an authenticated STARTTLS SMTP session.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// NewSMTPMailer creates an SMTPMailer for the given server and credentials.
func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// Send delivers one email. A nil attachment sends a plain HTML message.
func (m *SMTPMailer) Send(from, to, subject, htmlBody string, attachment []byte, filename string) bool {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if attachment != nil {
		msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return false
	}
	log.Printf("Email sent to %s", to)
	return true
}
