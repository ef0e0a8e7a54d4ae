package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateWelcome is sent once after a successful registration.
const TemplateWelcome = "welcome"

var welcomeHTML = template.Must(template.New(TemplateWelcome).Parse(`<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Welcome to {{.AppName}}, {{.Name}}!</h2>
  <p>Your account has been created. You can now sign in with your email address.</p>
  <p>If you did not create this account, please ignore this message.</p>
</body>
</html>`))

// NewWelcomeJob builds the queue payload for the welcome email.
func NewWelcomeJob(appName, name, to string) EmailJob {
	return EmailJob{
		To:       to,
		Template: TemplateWelcome,
		Data: map[string]any{
			"AppName": appName,
			"Name":    name,
		},
	}
}

// RenderWelcome produces the subject, text, and HTML bodies for a
// welcome job's data.
func RenderWelcome(data map[string]any) (subject, text, html string, err error) {
	appName, _ := data["AppName"].(string)
	name, _ := data["Name"].(string)
	if appName == "" {
		appName = "our service"
	}

	var buf bytes.Buffer
	if err = welcomeHTML.Execute(&buf, map[string]string{"AppName": appName, "Name": name}); err != nil {
		return "", "", "", err
	}

	subject = fmt.Sprintf("Welcome to %s", appName)
	text = fmt.Sprintf("Welcome to %s, %s! Your account has been created.", appName, name)
	return subject, text, buf.String(), nil
}
