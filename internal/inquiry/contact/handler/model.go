package contacthandler

import "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/contact"

type CreateContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=255"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"max=50"`
	Subject string `json:"subject" form:"subject" validate:"max=255"`
	Message string `json:"message" form:"message" validate:"required"`
}

func (cr *CreateContactRequest) ToDomain() contact.Contact {
	return contact.Contact{
		Name:    cr.Name,
		Email:   cr.Email,
		Phone:   cr.Phone,
		Subject: cr.Subject,
		Message: cr.Message,
	}
}

type UpdateContactRequest struct {
	Name    *string `json:"name" form:"name" validate:"omitnil,min=1,max=255"`
	Email   *string `json:"email" form:"email" validate:"omitnil,email"`
	Phone   *string `json:"phone" form:"phone" validate:"omitnil,max=50"`
	Subject *string `json:"subject" form:"subject" validate:"omitnil,max=255"`
	Message *string `json:"message" form:"message" validate:"omitnil,min=1"`
}

func (cr *UpdateContactRequest) ToPatch() contact.Patch {
	return contact.Patch{
		Name:    cr.Name,
		Email:   cr.Email,
		Phone:   cr.Phone,
		Subject: cr.Subject,
		Message: cr.Message,
	}
}

type ContactResponse struct {
	Contact contact.Contact `json:"contact"`
}

type ContactsResponse struct {
	Contacts []contact.Contact `json:"contacts"`
}
