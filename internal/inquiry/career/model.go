package career

import (
	"time"

	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
)

type Career struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	Message   string    `json:"message"`
	CV        *string   `json:"cv"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Career) Files() []*string {
	return []*string{c.CV}
}

type Patch struct {
	Name     *string
	Email    *string
	Phone    *string
	Position *string
	Message  *string
	CV       *string
}

func (p Patch) Apply(c *Career) {
	utils.Assign(&c.Name, p.Name)
	utils.Assign(&c.Email, p.Email)
	utils.Assign(&c.Phone, p.Phone)
	utils.Assign(&c.Position, p.Position)
	utils.Assign(&c.Message, p.Message)
	utils.AssignPath(&c.CV, p.CV)
}

type Uploads struct {
	CV *storage.Upload
}

func (u Uploads) Close() {
	u.CV.Close()
}
