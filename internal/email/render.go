package email

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

// Render подставляет данные в тему и тело шаблона из настроек
func Render(tpl models.EmailTemplate, data TemplateData) (*Email, error) {
	subject, err := execute("subject", tpl.Subject, data)
	if err != nil {
		return nil, err
	}
	body, err := execute("body", tpl.Body, data)
	if err != nil {
		return nil, err
	}
	return &Email{Subject: subject, Body: body}, nil
}

func execute(name, text string, data TemplateData) (string, error) {
	t, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	return buf.String(), nil
}
