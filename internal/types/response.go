package types

// CommandResponse is returned when the upstream model produced a reply.
type CommandResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Model     string `json:"model"`
}

// ServiceStatus describes the endpoint on GET.
type ServiceStatus struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Timestamp int64     `json:"timestamp"`
	Endpoints Endpoints `json:"endpoints"`
	Usage     string    `json:"usage"`
}

// Endpoints lists the routes advertised in ServiceStatus.
type Endpoints struct {
	Main string `json:"main"`
	Test string `json:"test"`
}
