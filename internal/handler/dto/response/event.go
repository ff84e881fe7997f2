package response

type EventResponse struct {
	Message string `json:"message"`
}
