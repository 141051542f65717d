package services

import (
	"bytes"
	"html/template"
	"log"

	"jerseystore/internal/mailer"
	"jerseystore/internal/models"
)

var adminContactTemplate = template.Must(template.New("contact_admin").Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

var userContactTemplate = template.Must(template.New("contact_user").Parse(`
<h2>Hello {{.Name}},</h2>
<p>Thanks for reaching out to us!</p>
<p>We received your message:</p>
<blockquote>{{.Message}}</blockquote>
<p>Our team will get back to you shortly.</p>
<p>Regards,<br>Sports Jersey Store Team</p>
`))

// ContactService sends contact form notifications: an alert to the
// store admin and an acknowledgement to the submitter.
type ContactService struct {
	mail  mailer.Sender
	from  string
	admin string
}

// NewContactService creates a new ContactService.
func NewContactService(mail mailer.Sender, from, admin string) *ContactService {
	return &ContactService{
		mail:  mail,
		from:  from,
		admin: admin,
	}
}

// Submit sends both contact emails and reports their independent
// outcomes. Failures are logged here; the handler escalates only when
// both sends fail.
func (s *ContactService) Submit(req *models.ContactRequest) (adminSent, userSent bool) {
	adminSent = s.send(s.admin, "New Contact Form Submission - Sports Jersey", adminContactTemplate, req)
	userSent = s.send(req.Email, "Thanks for contacting Sports Jersey Store", userContactTemplate, req)
	return adminSent, userSent
}

func (s *ContactService) send(to, subject string, tmpl *template.Template, req *models.ContactRequest) bool {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, req); err != nil {
		log.Printf("Failed to render contact email: %v", err)
		return false
	}
	return s.mail.Send(s.from, to, subject, buf.String(), nil, "")
}
