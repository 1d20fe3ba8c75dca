package email

import (
	"context"
	"fmt"
)

const appName = "DealDesk"

// BuildWelcomeEmail creates the onboarding message for a newly created
// user. The temporary password travels out of band; this only points
// them at the login page.
func BuildWelcomeEmail(to, firstName string) Message {
	name := firstName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Welcome to %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

An account has been created for you on %s.

Sign in with your email address and the temporary password your
administrator gave you. You'll be asked to pick a new password on
first login.

Thanks,
The %s Team`, name, appName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>An account has been created for you on %s.</p>
    <p>Sign in with your email address and the temporary password your administrator gave you. You'll be asked to pick a new password on first login.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`, name, appName, appName)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// SendWelcome is a convenience wrapper used by the user service.
func (c *Client) SendWelcome(ctx context.Context, to, firstName string) error {
	return c.Send(ctx, BuildWelcomeEmail(to, firstName))
}

// LifecycleAlertData carries the context of a failed payment
// lifecycle step after a deal stage change.
type LifecycleAlertData struct {
	DealName string
	DealID   string
	Action   string
	Detail   string
}

// BuildLifecycleAlertEmail creates the operations alert sent when a
// deal's stage changed but the follow-up payment action failed. The
// stage is already committed; someone has to re-run the action.
func BuildLifecycleAlertEmail(to []string, data LifecycleAlertData) Message {
	subject := fmt.Sprintf("[%s] Payment %s failed for deal %s", appName, data.Action, data.DealName)

	textBody := fmt.Sprintf(`The stage change for deal %q (%s) was saved, but the follow-up
payment action did not complete.

Action:  %s
Detail:  %s

Re-run the action from the deal page, or regenerate the payment
schedule if the deal's terms have changed.

%s`, data.DealName, data.DealID, data.Action, data.Detail, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #ef4444;">Payment %s failed</h2>
    <p>The stage change for deal <strong>%s</strong> was saved, but the follow-up payment action did not complete.</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-family: monospace; font-size: 14px;">%s</p>
    <p>Re-run the action from the deal page, or regenerate the payment schedule if the deal's terms have changed.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">%s</p>
</body>
</html>`, data.Action, data.DealName, data.Detail, appName)

	return Message{
		To:       to,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPaymentReceivedEmail creates the notice sent to a broker when a
// payment carrying one of their splits is marked received.
func BuildPaymentReceivedEmail(to, brokerName, dealName, amount, brokerTotal string) Message {
	name := brokerName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Payment received on %s", dealName)

	textBody := fmt.Sprintf(`Hi %s,

A payment of %s on deal %q has been marked received.

Your share of this payment: %s

Thanks,
The %s Team`, name, amount, dealName, brokerTotal, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>A payment of <strong>%s</strong> on deal <strong>%s</strong> has been marked received.</p>
    <p>Your share of this payment: <strong>%s</strong></p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`, name, amount, dealName, brokerTotal, appName)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
