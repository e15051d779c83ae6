package record

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "passwords-list",
		Method:      http.MethodGet,
		Path:        "/api/passwords",
		Summary:     "Список записей пользователя",
		Description: "Возвращает записи без секретов, новые изменения первыми.",
		Tags:        []string{"passwords"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "passwords-create",
		Method:        http.MethodPost,
		Path:          "/api/passwords",
		Summary:       "Создать запись",
		Tags:          []string{"passwords"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "passwords-get",
		Method:      http.MethodGet,
		Path:        "/api/passwords/{id}",
		Summary:     "Получить запись с расшифрованным секретом",
		Tags:        []string{"passwords"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "passwords-update",
		Method:      http.MethodPut,
		Path:        "/api/passwords/{id}",
		Summary:     "Частично обновить запись",
		Tags:        []string{"passwords"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "passwords-delete",
		Method:      http.MethodDelete,
		Path:        "/api/passwords/{id}",
		Summary:     "Удалить запись",
		Tags:        []string{"passwords"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
