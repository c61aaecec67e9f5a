package storage

import "strings"

// Worker: сотрудник (менеджер, модельер, ювелир), назначаемый на заказ.
type Worker struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func (w Worker) DisplayName() string {
	if full := strings.TrimSpace(w.FirstName + " " + w.LastName); full != "" {
		return full
	}
	return w.Username
}
