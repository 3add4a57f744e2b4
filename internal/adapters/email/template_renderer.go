package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	texttemplate "text/template"

	"esummit/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// templateFuncs are available to every template.
var templateFuncs = map[string]any{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

// emailTemplate is one email: templates/<name>_subject.txt, <name>.html and <name>.txt.
type emailTemplate struct {
	subject *texttemplate.Template
	html    *template.Template
	text    *texttemplate.Template
}

// templateRenderer implements domain.EmailTemplateRenderer. Templates are parsed once, when it is built.
type templateRenderer struct {
	emails map[string]*emailTemplate
}

// NewTemplateRenderer parses every email in domain.EmailTemplates from the embedded templates folder.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	return newTemplateRenderer(templateFS, domain.EmailTemplates...)
}

func newTemplateRenderer(fsys fs.FS, names ...string) (*templateRenderer, error) {
	r := &templateRenderer{emails: make(map[string]*emailTemplate, len(names))}
	for _, name := range names {
		e, err := parseEmailTemplate(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s email template: %w", name, err)
		}
		r.emails[name] = e
	}
	return r, nil
}

func parseEmailTemplate(fsys fs.FS, name string) (*emailTemplate, error) {
	subject, err := texttemplate.New(name + "_subject.txt").Funcs(templateFuncs).ParseFS(fsys, "templates/"+name+"_subject.txt")
	if err != nil {
		return nil, err
	}
	html, err := template.New(name + ".html").Funcs(templateFuncs).ParseFS(fsys, "templates/"+name+".html")
	if err != nil {
		return nil, err
	}
	text, err := texttemplate.New(name + ".txt").Funcs(templateFuncs).ParseFS(fsys, "templates/"+name+".txt")
	if err != nil {
		return nil, err
	}
	return &emailTemplate{subject: subject, html: html, text: text}, nil
}

// Render executes the named email (e.g. domain.TicketConfirmationTemplate) with data and returns subject, html, and text bodies.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	e, ok := r.emails[templateName]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", templateName)
	}
	var buf bytes.Buffer
	if err := e.subject.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := e.html.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := e.text.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return subject, htmlBody, buf.String(), nil
}
