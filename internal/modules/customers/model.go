package customers

import "time"

const dateLayout = "02/01/2006"

type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

func NowDate() string { return time.Now().Format(dateLayout) }
