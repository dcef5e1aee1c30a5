// Package mailer renders an advice run as HTML and delivers it over SMTP.
// The SMTP password is never part of the config surface; it is read from the
// FPLASSIST_SMTP_PASSWORD environment variable at send time.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"

	"fplassist/internal/contract"
	"fplassist/schema"

	"github.com/wneessen/go-mail"
)

// PasswordEnvVar names the environment variable holding the SMTP password.
const PasswordEnvVar = "FPLASSIST_SMTP_PASSWORD"

var bodyTemplate = template.Must(template.New("advice").Funcs(template.FuncMap{
	"position": schema.PositionLabel,
	"chip":     schema.ChipLabel,
	"cost":     schema.FormatCost,
	"label":    contract.GetPlainLabel,
	"score":    func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"inc":      func(i int) int { return i + 1 },
}).Parse(`<html>
<body>
<h2>FPL advice for GW{{.NextGameweek}}</h2>
<p>Generated {{.GeneratedAt.Format "2006-01-02 15:04"}} over the next {{.Lookahead}} gameweeks.</p>

<h3>Transfer picks</h3>
{{if .Picks}}
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>#</th><th>Player</th><th>Team</th><th>Pos</th><th>Cost</th><th>Score</th><th>Verdict</th></tr>
{{range $i, $s := .Picks}}
<tr><td>{{inc $i}}</td><td>{{$s.Name}}</td><td>{{$s.TeamName}}</td><td>{{position $s.Position}}</td><td>{{cost $s.Cost}}</td><td>{{score $s.Score}}</td><td>{{label $s.Score}}</td></tr>
{{end}}
</table>
{{else}}
<p>No picks available.</p>
{{end}}

<h3>Transfer out</h3>
{{if .TransfersOut}}
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>#</th><th>Player</th><th>Team</th><th>Score</th><th>Reason</th></tr>
{{range $i, $f := .TransfersOut}}
<tr><td>{{inc $i}}</td><td>{{$f.Name}}</td><td>{{$f.TeamName}}</td><td>{{score $f.Score}}</td><td>{{$f.Reason}}</td></tr>
{{end}}
</table>
{{else}}
<p>Nothing flagged this week.</p>
{{end}}

<h3>Chip plan</h3>
{{if .Chips}}
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Chip</th><th>Gameweek</th><th>Reason</th></tr>
{{range .Chips}}
<tr><td>{{chip .Chip}}</td><td>GW{{.Gameweek}}</td><td>{{.Reason}}</td></tr>
{{end}}
</table>
{{else}}
<p>No chip recommendations.</p>
{{end}}
</body>
</html>
`))

// RenderHTML produces the HTML body for an advice email.
func RenderHTML(advice schema.Advice) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, advice); err != nil {
		return "", fmt.Errorf("failed to render email body: %w", err)
	}
	return buf.String(), nil
}

// Send renders the advice and delivers it to the configured recipient.
func Send(ctx context.Context, advice schema.Advice, email contract.EmailConfig) error {
	if email.To == "" || email.From == "" || email.Host == "" {
		return errors.New("email requires --email-to, --email-from and --smtp-host")
	}
	password := os.Getenv(PasswordEnvVar)
	if password == "" {
		return fmt.Errorf("SMTP password not set; export %s", PasswordEnvVar)
	}

	body, err := RenderHTML(advice)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(email.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("FPL advice for GW%d", advice.NextGameweek))
	msg.SetBodyString(mail.TypeTextHTML, body)

	port := email.Port
	if port == 0 {
		port = 587
	}
	client, err := mail.NewClient(email.Host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(email.From),
		mail.WithPassword(password),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send advice email: %w", err)
	}
	return nil
}
