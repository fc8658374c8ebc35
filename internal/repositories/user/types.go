package user

type UpsertUserInput struct {
	ExternalID  string
	DisplayName string
}

type GetUserInput struct {
	UserID string
}
