package user

import "time"

type User struct {
	ID         int        `json:"id"`
	Username   string     `json:"username"`
	Password   string     `json:"password,omitempty"`
	Email      string     `json:"email"`
	FirstName  *string    `json:"firstName"`
	LastName   *string    `json:"lastName"`
	BirthDate  *time.Time `json:"birthDate"`
	BirthTime  *string    `json:"birthTime"`
	BirthPlace *string    `json:"birthPlace"`
	CreatedAt  time.Time  `json:"createdAt"`
}
