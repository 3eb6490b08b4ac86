// Package view определяет интерфейс отображения шаблонов.
package view

// Renderer отображает именованный шаблон с параметрами.
type Renderer interface {
	Render(name string, data any) ([]byte, error)
}
