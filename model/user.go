package model

// User is the registered visitor identity. One instance exists per process;
// logout resets it wholesale to the zero value.
type User struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	IsRegistered bool   `json:"is_registered"`
}

// RegisterRequest for visitor registration
type RegisterRequest struct {
	Name  string `json:"name" validate:"required,min=3"`
	Phone string `json:"phone" validate:"required,min=9"`
}

type RegisterResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
