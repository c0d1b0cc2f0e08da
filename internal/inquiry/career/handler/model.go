package careerhandler

import "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/career"

type CreateCareerRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=255"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone" validate:"required,max=50"`
	Position string `json:"position" form:"position" validate:"required,max=255"`
	Message  string `json:"message" form:"message"`
	CV       string `json:"cv" form:"-"`
}

func (cr *CreateCareerRequest) ToDomain() career.Career {
	c := career.Career{
		Name:     cr.Name,
		Email:    cr.Email,
		Phone:    cr.Phone,
		Position: cr.Position,
		Message:  cr.Message,
	}

	if cr.CV != "" {
		c.CV = &cr.CV
	}

	return c
}

type UpdateCareerRequest struct {
	Name     *string `json:"name" form:"name" validate:"omitnil,min=1,max=255"`
	Email    *string `json:"email" form:"email" validate:"omitnil,email"`
	Phone    *string `json:"phone" form:"phone" validate:"omitnil,min=1,max=50"`
	Position *string `json:"position" form:"position" validate:"omitnil,min=1,max=255"`
	Message  *string `json:"message" form:"message"`
	CV       *string `json:"cv" form:"-"`
}

func (cr *UpdateCareerRequest) ToPatch() career.Patch {
	return career.Patch{
		Name:     cr.Name,
		Email:    cr.Email,
		Phone:    cr.Phone,
		Position: cr.Position,
		Message:  cr.Message,
		CV:       cr.CV,
	}
}

type CareerResponse struct {
	Career career.Career `json:"career"`
}

type CareersResponse struct {
	Careers []career.Career `json:"careers"`
}
