package repoargs

import "time"

type CreateClient struct {
	Name         string
	Email        string
	CPF          string
	DateOfBirth  time.Time
	PasswordHash string
}

// UpdateClient - частичное обновление профиля, nil-поля не трогаются.
type UpdateClient struct {
	Name         *string
	Email        *string
	DateOfBirth  *time.Time
	PasswordHash *string
}

type ClientSummary struct {
	ID    int64
	Name  string
	Email string
}
