// Copyright (C) 2024 LetMe Accommodation Ltd.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package application

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// mailSender is satisfied by *sendgrid.Client.
type mailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// SendError carries the upstream mail provider response so the handler can
// propagate the body text to the caller.
type SendError struct {
	StatusCode int
	Body       string
}

func (s *SendError) Error() string {
	return fmt.Sprintf("email send failed with status %d: %s", s.StatusCode, s.Body)
}

type emailRow struct {
	Label string
	Value string
}

type emailData struct {
	LogoURL       string
	PropertyRows  []emailRow
	ApplicantRows []emailRow
}

// The applicant supplies every value in these rows, so the template has to
// escape them. html/template does that for all fields.
var emailTemplate = template.Must(template.New("application").Parse(`
<div style="font-family: Inter, ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial; background:#0b1020; padding:24px; color:#e6e9f5;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="max-width:640px; margin:0 auto; background:#0e1326; border-radius:16px; overflow:hidden;">
    <tr>
      <td style="padding:24px 24px 0 24px; text-align:center;">
        {{if .LogoURL}}<img src="{{.LogoURL}}" alt="LetMe" style="height:48px; width:auto;" />{{else}}<div style="font-weight:700; font-size:24px;">LetMe</div>{{end}}
      </td>
    </tr>
    <tr>
      <td style="padding:8px 24px 0 24px; text-align:center;">
        <h1 style="margin:0; font-size:22px; color:#ffffff;">New Rental Application</h1>
        <p style="margin:8px 0 0 0; color:#b8bfd9;">A candidate has submitted an application via the website.</p>
      </td>
    </tr>
    <tr>
      <td style="padding:24px;">
        <div style="background:#121938; border:1px solid #2a3768; border-radius:12px; padding:16px;">
          <h2 style="margin:0 0 12px 0; font-size:16px; color:#dbe2ff;">Property &amp; Unit</h2>
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="font-size:14px; color:#c8cdea;">
            {{range .PropertyRows}}<tr>
              <td style="padding:6px 0; width:180px; color:#8fa0d6;">{{.Label}}</td>
              <td style="padding:6px 0;">{{.Value}}</td>
            </tr>
            {{end}}
          </table>
        </div>
        <div style="height:12px;"></div>
        <div style="background:#121938; border:1px solid #2a3768; border-radius:12px; padding:16px;">
          <h2 style="margin:0 0 12px 0; font-size:16px; color:#dbe2ff;">Applicant Details</h2>
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="font-size:14px; color:#c8cdea;">
            {{range .ApplicantRows}}<tr>
              <td style="padding:6px 0; width:180px; color:#8fa0d6;">{{.Label}}</td>
              <td style="padding:6px 0;">{{.Value}}</td>
            </tr>
            {{end}}
          </table>
        </div>
        <p style="margin:16px 0 0 0; font-size:12px; color:#7e8bb6; text-align:center;">This email was generated by the LetMe website.</p>
      </td>
    </tr>
  </table>
</div>
`))

var pricePrinter = message.NewPrinter(language.BritishEnglish)

func formatMoney(value float64) string {
	return pricePrinter.Sprintf("£%v", number.Decimal(value))
}

type service struct {
	config Config
	sender mailSender
}

func NewService(config Config, sender mailSender) *service {
	return &service{
		config: config,
		sender: sender,
	}
}

func (s *service) logoURL() string {
	if s.config.SiteURL == "" {
		return ""
	}
	return strings.TrimRight(s.config.SiteURL, "/") + "/letme-logo.png"
}

func (s *service) renderBody(req applicationRequest) (string, error) {
	data := emailData{
		LogoURL: s.logoURL(),
		PropertyRows: []emailRow{
			{Label: "Property", Value: req.PropertyName},
			{Label: "Unit", Value: req.UnitName},
			{Label: "Area", Value: req.AreaName},
			{Label: "Address", Value: req.Address},
			{Label: "Monthly Rent", Value: formatMoney(req.MonthlyPrice)},
		},
		ApplicantRows: []emailRow{
			{Label: "Full Name", Value: req.ApplicantName},
			{Label: "Email", Value: req.Email},
			{Label: "Phone", Value: req.Phone},
			{Label: "Date of Birth", Value: req.DateOfBirth},
			{Label: "Current Address", Value: req.CurrentAddress},
			{Label: "Employment Status", Value: req.EmploymentStatus},
			{Label: "Monthly Income", Value: formatMoney(req.MonthlyIncome)},
		},
	}

	var body strings.Builder
	if err := emailTemplate.Execute(&body, data); err != nil {
		return "", errors.Wrap(err, "could not render application email")
	}
	return body.String(), nil
}

// SendApplication forwards one submitted application to the lettings inbox.
// Nothing is persisted and there are no retries - the caller gets the
// provider response either way.
func (s *service) SendApplication(req applicationRequest) error {
	body, err := s.renderBody(req)
	if err != nil {
		return err
	}

	subject := strings.TrimSpace(fmt.Sprintf("New Application: %s · %s", req.UnitName, req.PropertyName))

	plainText := fmt.Sprintf("New rental application from %s for %s at %s.", req.ApplicantName, req.UnitName, req.PropertyName)

	from := mail.NewEmail(s.config.FromName, s.config.FromEmail)
	to := mail.NewEmail("", s.config.ToEmail)
	msg := mail.NewSingleEmail(from, subject, to, plainText, body)

	resp, err := s.sender.Send(msg)
	if err != nil {
		return errors.Wrap(err, "could not reach the mail provider")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &SendError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	return nil
}
