package request_models

// CreateUserRequest adds a staff account. Active defaults to true when
// omitted; Role defaults to freelancer.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   *bool  `json:"active"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// BootstrapFounderRequest seeds the very first founder account. Used by
// the bootstrap command only; the HTTP API never exposes it.
type BootstrapFounderRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
