package client

import (
	"strings"
	"time"
)

// User - профиль аккаунта, как его возвращает сервер
type User struct {
	ID        string    `json:"id" yaml:"id"`
	Email     string    `json:"email" yaml:"email"`
	Name      *string   `json:"name,omitempty" yaml:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Summary - запись без секрета; только она попадает в локальный кэш
type Summary struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Username  *string   `json:"username,omitempty" yaml:"username,omitempty"`
	URL       *string   `json:"url,omitempty" yaml:"url,omitempty"`
	Notes     *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Detail - запись с расшифрованным секретом
type Detail struct {
	Summary  `yaml:",inline"`
	Password string `json:"password" yaml:"password"`
}

type CreateRequest struct {
	Title    string `json:"title"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateRequest - частичное обновление: nil поле не отправляется,
// пустая строка очищает значение на сервере
type UpdateRequest struct {
	Title    *string `json:"title,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	URL      *string `json:"url,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// IsEmpty сообщает, что в запросе нет ни одного поля
func (r UpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Username == nil && r.Password == nil && r.URL == nil && r.Notes == nil
}

// Matches проверяет запрос поиска по названию, имени пользователя и адресу
func (s Summary) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []*string{&s.Title, s.Username, s.URL} {
		if field != nil && strings.Contains(strings.ToLower(*field), q) {
			return true
		}
	}
	return false
}

// Filter оставляет записи, подходящие под запрос
func Filter(items []Summary, query string) []Summary {
	out := make([]Summary, 0, len(items))
	for _, it := range items {
		if it.Matches(query) {
			out = append(out, it)
		}
	}
	return out
}
