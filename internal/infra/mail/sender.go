package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendLeadAssigned(to, kamName, restaurantName, leadID string) error {
	body, err := renderTemplate("lead_assigned.html", LeadAssignedData{
		KAMName:        kamName,
		RestaurantName: restaurantName,
		LeadID:         leadID,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("New lead assigned: %s", restaurantName)
	return s.send(to, subject, body)
}

func (s *EmailSender) SendCallReminder(to, kamName, restaurantName, leadID string, nextCallDate string) error {
	body, err := renderTemplate("call_reminder.html", CallReminderData{
		KAMName:        kamName,
		RestaurantName: restaurantName,
		LeadID:         leadID,
		NextCallDate:   nextCallDate,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Call due: %s", restaurantName)
	return s.send(to, subject, body)
}

func renderTemplate(name string, data any) (string, error) {
	t, err := template.ParseFiles(filepath.Join("templates", name))
	if err != nil {
		return "", fmt.Errorf("parse mail template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("render mail template: %w", err)
	}
	return body.String(), nil
}

func (s *EmailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
