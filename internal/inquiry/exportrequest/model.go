package exportrequest

import (
	"time"

	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
)

type ExportRequest struct {
	ID          int       `json:"id"`
	CompanyName string    `json:"company_name"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Country     string    `json:"country"`
	Products    string    `json:"products"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Patch struct {
	CompanyName *string
	Name        *string
	Email       *string
	Phone       *string
	Country     *string
	Products    *string
	Message     *string
}

func (p Patch) Apply(e *ExportRequest) {
	utils.Assign(&e.CompanyName, p.CompanyName)
	utils.Assign(&e.Name, p.Name)
	utils.Assign(&e.Email, p.Email)
	utils.Assign(&e.Phone, p.Phone)
	utils.Assign(&e.Country, p.Country)
	utils.Assign(&e.Products, p.Products)
	utils.Assign(&e.Message, p.Message)
}
