package response

// Created is the uniform reply for admin create endpoints.
type Created struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
