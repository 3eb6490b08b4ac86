package entities

import (
	"errors"
	"time"
)

// Ошибки домена поста.
var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptySubject = errors.New("subject cannot be empty")
	ErrEmptyContent = errors.New("content cannot be empty")
)

// displayTimeFormat - формат дат в экспортном представлении поста.
const displayTimeFormat = time.ANSIC

// Post представляет запись блога.
type Post struct {
	ID           int64     `json:"id"`
	Subject      string    `json:"subject"`
	Content      string    `json:"content"`
	Created      time.Time `json:"created"`
	LastModified time.Time `json:"last_modified"`
}

// PostView - структурированное представление поста для машиночитаемых ответов.
type PostView struct {
	Subject      string `json:"subject"`
	Content      string `json:"content"`
	Created      string `json:"created"`
	LastModified string `json:"last_modified"`
}

// View возвращает представление поста с отформатированными датами.
func (p *Post) View() PostView {
	return PostView{
		Subject:      p.Subject,
		Content:      p.Content,
		Created:      p.Created.Format(displayTimeFormat),
		LastModified: p.LastModified.Format(displayTimeFormat),
	}
}
