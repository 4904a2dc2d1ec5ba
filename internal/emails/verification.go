// Package emails renders outbound email bodies.
package emails

import (
	"bytes"
	"html/template"
)

// VerificationSubject is the subject line for email verification messages
const VerificationSubject = "Verify your email address"

type verificationData struct {
	Name string
	OTP  string
}

var verificationTmpl = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
  <body style="background-color:#1b2838;font-family:'Segoe UI','Helvetica Neue',Arial,sans-serif;padding:20px 0;">
    <div style="background-color:#16202d;margin:0 auto;max-width:600px;padding:32px;color:#c7d5e0;">
      <h1 style="color:#ffffff;margin-bottom:4px;">HazriPro</h1>
      <p style="color:#8f98a0;margin-top:0;">Email Verification</p>
      <hr style="border-color:#2a475e;" />
      <p>Hello {{.Name}},</p>
      <p>Thank you for creating a HazriPro account. To complete your registration, please verify your email address using the verification code below.</p>
      <div style="background-color:#2a475e;padding:24px;text-align:center;margin:24px 0;">
        <p style="color:#8f98a0;margin:0 0 8px;">Verification Code</p>
        <span style="font-size:32px;letter-spacing:12px;color:#ffffff;font-weight:bold;">{{.OTP}}</span>
      </div>
      <p>Enter this code on the verification screen to complete your registration.</p>
      <p style="color:#8f98a0;font-size:13px;">This code will expire in 24 hours. If you didn't create this account, you can safely ignore this email.</p>
      <hr style="border-color:#2a475e;" />
      <p style="color:#8f98a0;font-size:12px;">This email was sent by HazriPro. If you have any questions, please contact <a href="mailto:support@hazripro.com" style="color:#66c0f4;">our support team</a>.</p>
    </div>
  </body>
</html>`))

// RenderVerification renders the verification email body for the given
// recipient name and OTP code.
func RenderVerification(name, otp string) (string, error) {
	if name == "" {
		name = "User"
	}
	var buf bytes.Buffer
	if err := verificationTmpl.Execute(&buf, verificationData{Name: name, OTP: otp}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
