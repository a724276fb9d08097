package utils

import (
	"academia/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email through the configured SMTP account. When no
// sender is configured the send is skipped, which keeps local and test runs
// quiet.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" {
		log.Printf("Email sending skipped (no EMAIL_SENDER configured): %s", subject)
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Academia <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #0e8cc3; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #021c27; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Academia de Formación de Oficios Profesionales y Artes, C.A</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail notifies a freshly registered user
func SendWelcomeEmail(to, nombre string) error {
	body := fmt.Sprintf("<h2>Bienvenido, %s</h2><p>Su cuenta ha sido creada exitosamente.</p>", nombre)
	return SendEmail([]string{to}, "Bienvenido a la Academia", emailTemplate("Registro exitoso", body))
}

// SendInscripcionAprobadaEmail notifies a student that an enrollment was approved
func SendInscripcionAprobadaEmail(to, nombre, codigoSeccion string) error {
	body := fmt.Sprintf(
		"<h2>Hola, %s</h2><p>Su inscripción a la sección <b>%s</b> ha sido aprobada. Ya forma parte del curso.</p>",
		nombre, codigoSeccion,
	)
	return SendEmail([]string{to}, "Inscripción aprobada", emailTemplate("Inscripción aprobada", body))
}
