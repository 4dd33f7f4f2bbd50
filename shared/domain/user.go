package domain

type User struct {
	Id    UserId
	Email string
	Admin bool
}
