package service

type CreateUserCommand struct {
	Name  string
	Email string
	Phone string
}

type ListUsersQuery struct {
	Limit  int
	Cursor string
}

// UpdateUserCommand carries only the fields the caller set; nil means
// "leave unchanged".
type UpdateUserCommand struct {
	ID    string
	Name  *string
	Phone *string
}

type InboundMessageCommand struct {
	Phone string
	Text  string
}
