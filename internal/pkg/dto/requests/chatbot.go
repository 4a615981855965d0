package requests

type ChatbotQuery struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context"`
}
