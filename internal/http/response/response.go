// Package response содержит тип единообразного JSON-ответа сервера.
// Все ответы с сообщением (успех и ошибка) имеют вид {"message": "..."}.
package response

// Response описывает JSON-ответ с единственным текстовым сообщением.
type Response struct {
	Message string `json:"message"`
}

// Message возвращает Response с заданным текстом.
func Message(msg string) Response {
	return Response{Message: msg}
}
