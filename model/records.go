package model

// Property is a seeded property occupation record.
type Property struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	NextAction string `json:"nextAction"`
	DueDate    string `json:"dueDate"`
}

// Invoice is a seeded invoice record. Status is a literal, never derived.
type Invoice struct {
	ID       int    `json:"id"`
	Property string `json:"property"`
	Amount   int    `json:"amount"`
	Status   string `json:"status"`
	DueDate  string `json:"dueDate"`
}

// ErrorResponse contains error information returned by a remote document endpoint
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
