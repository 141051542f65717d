package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jerseystore/internal/models"
	"jerseystore/internal/services"
)

// recordingSender captures sent emails and fails on demand per recipient.
type recordingSender struct {
	sent    []sentMail
	failFor map[string]bool
}

type sentMail struct {
	from, to, subject, body string
	attachment              []byte
	filename                string
}

func newRecordingSender() *recordingSender {
	return &recordingSender{failFor: make(map[string]bool)}
}

func (s *recordingSender) Send(from, to, subject, htmlBody string, attachment []byte, filename string) bool {
	if s.failFor[to] {
		return false
	}
	s.sent = append(s.sent, sentMail{from, to, subject, htmlBody, attachment, filename})
	return true
}

func contactRequest() *models.ContactRequest {
	return &models.ContactRequest{
		Name:    "Ada Obi",
		Email:   "ada@example.com",
		Message: "Do you ship to Abuja?",
	}
}

func TestContactService_Submit_BothDelivered(t *testing.T) {
	sender := newRecordingSender()
	service := services.NewContactService(sender, "store@example.com", "admin@example.com")

	adminSent, userSent := service.Submit(contactRequest())
	assert.True(t, adminSent)
	assert.True(t, userSent)
	require.Len(t, sender.sent, 2)

	admin := sender.sent[0]
	assert.Equal(t, "admin@example.com", admin.to)
	assert.Equal(t, "New Contact Form Submission - Sports Jersey", admin.subject)
	assert.Contains(t, admin.body, "Ada Obi")
	assert.Contains(t, admin.body, "Do you ship to Abuja?")
	assert.Contains(t, admin.body, "Not provided") // no phone supplied

	user := sender.sent[1]
	assert.Equal(t, "ada@example.com", user.to)
	assert.Equal(t, "Thanks for contacting Sports Jersey Store", user.subject)
	assert.Contains(t, user.body, "Hello Ada Obi")
}

func TestContactService_Submit_PhoneIncludedWhenProvided(t *testing.T) {
	sender := newRecordingSender()
	service := services.NewContactService(sender, "store@example.com", "admin@example.com")

	req := contactRequest()
	req.Phone = "+2348000000000"
	adminSent, _ := service.Submit(req)
	assert.True(t, adminSent)
	assert.Contains(t, sender.sent[0].body, "+2348000000000")
}

func TestContactService_Submit_IndependentFailures(t *testing.T) {
	sender := newRecordingSender()
	sender.failFor["admin@example.com"] = true
	service := services.NewContactService(sender, "store@example.com", "admin@example.com")

	adminSent, userSent := service.Submit(contactRequest())
	assert.False(t, adminSent)
	assert.True(t, userSent)

	sender = newRecordingSender()
	sender.failFor["ada@example.com"] = true
	service = services.NewContactService(sender, "store@example.com", "admin@example.com")

	adminSent, userSent = service.Submit(contactRequest())
	assert.True(t, adminSent)
	assert.False(t, userSent)
}

func TestContactService_Submit_MessageIsEscaped(t *testing.T) {
	sender := newRecordingSender()
	service := services.NewContactService(sender, "store@example.com", "admin@example.com")

	req := contactRequest()
	req.Message = "<script>alert(1)</script>"
	service.Submit(req)
	require.Len(t, sender.sent, 2)
	assert.NotContains(t, sender.sent[0].body, "<script>")
}
