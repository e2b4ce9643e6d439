package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"planner/pkg/utils"
)

type IMailService interface {
	// SendTripConfirmationMail asks the trip owner to confirm a freshly
	// created trip via the embedded link.
	SendTripConfirmationMail(to, ownerName, destination string, startsAt, endsAt time.Time, confirmURL string) error

	// SendPresenceConfirmationMail asks an invitee to confirm their presence.
	SendPresenceConfirmationMail(to, destination string, startsAt, endsAt time.Time, confirmURL string) error
}

// SMTPConfig holds SMTP + branding settings.
type SMTPConfig struct {
	Host       string // e.g. "smtp.ethereal.email"
	Port       int    // 587 for STARTTLS
	Username   string
	Password   string
	From       string // envelope from, e.g. "oi@planner.er"
	FromName   string // display name, e.g. "Planner"
	RequireTLS bool   // fail if STARTTLS is not offered

	AppName string // used in header and footer
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("mailHTML").Parse(mailHTMLTemplate)),
		textTpl: template.Must(template.New("mailText").Parse(mailTextTemplate)),
	}, nil
}

// ------------------- Public API -------------------

func (s *smtpMailService) SendTripConfirmationMail(
	to, ownerName, destination string, startsAt, endsAt time.Time, confirmURL string,
) error {
	start := utils.FormatMailDate(startsAt)
	end := utils.FormatMailDate(endsAt)

	subject := fmt.Sprintf("Confirm your trip to %s on %s", destination, start)
	html, text, err := s.renderEmail(emailData{
		Title: subject,
		Intro: fmt.Sprintf(
			"Hello %s, you have requested to create a trip to %s from %s to %s. If you do not know what this email is about, just ignore it.",
			ownerName, destination, start, end,
		),
		ButtonURL: confirmURL,
		ButtonTxt: "Confirm trip",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

func (s *smtpMailService) SendPresenceConfirmationMail(
	to, destination string, startsAt, endsAt time.Time, confirmURL string,
) error {
	start := utils.FormatMailDate(startsAt)
	end := utils.FormatMailDate(endsAt)

	subject := fmt.Sprintf("Confirm your presence in the trip to %s on %s", destination, start)
	html, text, err := s.renderEmail(emailData{
		Title: subject,
		Intro: fmt.Sprintf(
			"You were invited to a trip to %s from %s to %s. If you do not know what this email is about, just ignore it.",
			destination, start, end,
		),
		ButtonURL: confirmURL,
		ButtonTxt: "Confirm presence",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

// ------------------- Rendering -------------------

type emailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const mailHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f8fafc; color: #0f172a; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 8px 24px rgba(0,0,0,0.08); }
    .header { padding: 24px 32px; border-bottom: 1px solid #e2e8f0; }
    .brand { font-weight: 700; font-size: 20px; color: #84cc16; letter-spacing: 0.5px; text-transform: uppercase; }
    .hero { padding: 32px; }
    h1 { margin: 0 0 16px; font-size: 24px; line-height: 1.3; }
    p { margin: 0 0 20px; line-height: 1.6; color: #475569; font-size: 16px; }
    .btn { display: inline-block; padding: 14px 28px; background: #84cc16; color: #1a2e05 !important; text-decoration: none; border-radius: 8px; font-weight: 600; }
    .muted { color: #94a3b8; font-size: 13px; line-height: 1.6; }
    .link-text { color: #65a30d; word-break: break-all; font-size: 13px; }
    .footer { padding: 20px 32px; color: #94a3b8; font-size: 13px; text-align: center; border-top: 1px solid #e2e8f0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><div class="brand">{{.AppName}}</div></div>
    <div class="hero">
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
      {{if .ButtonURL}}
        <p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>
        <p class="muted">If the button doesn't work, copy and paste this link into your browser:</p>
        <a href="{{.ButtonURL}}" class="link-text">{{.ButtonURL}}</a>
      {{end}}
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}. All rights reserved.</div>
  </div>
</body>
</html>`

const mailTextTemplate = `{{.Title}}

{{.Intro}}

{{if .ButtonURL}}Open this link:
{{.ButtonURL}}
{{end}}

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data emailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer
	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	if err = c.Auth(auth); err != nil {
		return err
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}
