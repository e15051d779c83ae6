package health

type Input struct{}

type Output struct {
	Body Response
}

// Response повторяет формат {status, message}; database добавлен для
// проверок готовности
type Response struct {
	Status   string `json:"status" example:"OK" doc:"Состояние сервиса"`
	Message  string `json:"message" example:"SecureNest API is running" doc:"Описание состояния"`
	Database string `json:"database,omitempty" example:"up" enum:"up,unchecked" doc:"Состояние хранилища"`
}
