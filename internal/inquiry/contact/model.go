package contact

import (
	"time"

	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
)

type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Patch struct {
	Name    *string
	Email   *string
	Phone   *string
	Subject *string
	Message *string
}

func (p Patch) Apply(c *Contact) {
	utils.Assign(&c.Name, p.Name)
	utils.Assign(&c.Email, p.Email)
	utils.Assign(&c.Phone, p.Phone)
	utils.Assign(&c.Subject, p.Subject)
	utils.Assign(&c.Message, p.Message)
}
