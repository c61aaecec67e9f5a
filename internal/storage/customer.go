package storage

import "strings"

type Customer struct {
	ID      int64  `json:"customer_id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.Name + " " + c.Surname)
}
