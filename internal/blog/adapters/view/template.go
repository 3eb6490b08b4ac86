// Package view реализует рендеринг HTML страниц.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	viewPorts "goblog/internal/blog/ports/view"
)

// TemplateRenderer рендерит страницы из набора html/template шаблонов,
// разобранных один раз при старте. html/template экранирует подстановки,
// поэтому пользовательский контент безопасен для HTML контекста.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer разбирает все *.html шаблоны из каталога.
func NewTemplateRenderer(dir string) (viewPorts.Renderer, error) {
	templates, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parsing templates in %s: %w", dir, err)
	}
	return &TemplateRenderer{templates: templates}, nil
}

// Render выполняет именованный шаблон и возвращает готовое тело ответа.
func (r *TemplateRenderer) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
