package v1

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required,phone"`
}

// Pointer fields distinguish "absent" from "present but empty"; an empty
// name or a malformed phone is rejected only when the field was sent.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Phone *string `json:"phone" validate:"omitempty,phone"`
}

type WebhookRequest struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
}
