package record

import (
	"securenest/internal/domain/record"
)

type idInput struct {
	ID string `path:"id" doc:"ID записи (UUID)" example:"3f2b8c1e-6a4d-4e8b-9c7f-1a2b3c4d5e6f"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Passwords []record.Summary `json:"passwords"`
}

type getOutput struct {
	Body getResponse
}

type getResponse struct {
	Password record.Detail `json:"password"`
}

type createInput struct {
	Body createRequest
}

// Обязательность полей проверяет домен, чтобы ошибки были в одном формате
type createRequest struct {
	Title    string `json:"title,omitempty" doc:"Название записи" example:"Gmail"`
	Username string `json:"username,omitempty" doc:"Имя пользователя" example:"alice"`
	Password string `json:"password,omitempty" doc:"Секрет; хранится в зашифрованном виде" example:"p@ss1"`
	URL      string `json:"url,omitempty" doc:"Адрес ресурса" example:"https://mail.google.com"`
	Notes    string `json:"notes,omitempty" doc:"Заметки"`
}

type updateInput struct {
	ID   string `path:"id" doc:"ID записи (UUID)"`
	Body updateRequest
}

// Отсутствующее поле не меняется; пустая строка очищает username, url и notes
type updateRequest struct {
	Title    *string `json:"title,omitempty" doc:"Новое название"`
	Username *string `json:"username,omitempty" doc:"Новое имя пользователя"`
	Password *string `json:"password,omitempty" doc:"Новый секрет"`
	URL      *string `json:"url,omitempty" doc:"Новый адрес"`
	Notes    *string `json:"notes,omitempty" doc:"Новые заметки"`
}

type summaryOutput struct {
	Body summaryResponse
}

type summaryResponse struct {
	Message  string         `json:"message"`
	Password record.Summary `json:"password"`
}

type messageOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}

func (r createRequest) toInput() record.CreateInput {
	return record.CreateInput{
		Title:    r.Title,
		Username: r.Username,
		Secret:   r.Password,
		URL:      r.URL,
		Notes:    r.Notes,
	}
}

func (r updateRequest) toPatch() record.Patch {
	return record.Patch{
		Title:    record.FromPtr(r.Title),
		Username: record.FromPtr(r.Username),
		Secret:   record.FromPtr(r.Password),
		URL:      record.FromPtr(r.URL),
		Notes:    record.FromPtr(r.Notes),
	}
}
