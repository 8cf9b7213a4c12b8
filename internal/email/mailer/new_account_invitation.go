// internal/email/mailer/new_account_invitation.go
package mailer

import "github.com/outreachhub/outreachhub/internal/email"

// InvitationTemplateData contains data for the invitation email template
type InvitationTemplateData struct {
	FirstName    string
	Username     string
	Organization string
}

// InvitationMailer sends the email a freshly created staff account
// receives, carrying their username and organization.
type InvitationMailer struct {
	service *email.Service
}

func NewInvitationMailer(service *email.Service) *InvitationMailer {
	return &InvitationMailer{service: service}
}

func (m *InvitationMailer) SendInvitation(to, firstName, username, organization string) error {
	templateData := InvitationTemplateData{
		FirstName:    firstName,
		Username:     username,
		Organization: organization,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     organization,
		Subject:      "You have been added to " + organization + " on OutreachHub",
		TemplateName: "new_account_invitation",
		TemplateData: templateData,
	}

	return m.service.SendEmail(emailData)
}
