package exportrequesthandler

import "github.com/xw1nchester/foodcatalog-backend/internal/inquiry/exportrequest"

type CreateExportRequestRequest struct {
	CompanyName string `json:"company_name" form:"company_name" validate:"required,max=255"`
	Name        string `json:"name" form:"name" validate:"required,max=255"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Phone       string `json:"phone" form:"phone" validate:"required,max=50"`
	Country     string `json:"country" form:"country" validate:"required,max=100"`
	Products    string `json:"products" form:"products"`
	Message     string `json:"message" form:"message"`
}

func (er *CreateExportRequestRequest) ToDomain() exportrequest.ExportRequest {
	return exportrequest.ExportRequest{
		CompanyName: er.CompanyName,
		Name:        er.Name,
		Email:       er.Email,
		Phone:       er.Phone,
		Country:     er.Country,
		Products:    er.Products,
		Message:     er.Message,
	}
}

type UpdateExportRequestRequest struct {
	CompanyName *string `json:"company_name" form:"company_name" validate:"omitnil,min=1,max=255"`
	Name        *string `json:"name" form:"name" validate:"omitnil,min=1,max=255"`
	Email       *string `json:"email" form:"email" validate:"omitnil,email"`
	Phone       *string `json:"phone" form:"phone" validate:"omitnil,min=1,max=50"`
	Country     *string `json:"country" form:"country" validate:"omitnil,min=1,max=100"`
	Products    *string `json:"products" form:"products"`
	Message     *string `json:"message" form:"message"`
}

func (er *UpdateExportRequestRequest) ToPatch() exportrequest.Patch {
	return exportrequest.Patch{
		CompanyName: er.CompanyName,
		Name:        er.Name,
		Email:       er.Email,
		Phone:       er.Phone,
		Country:     er.Country,
		Products:    er.Products,
		Message:     er.Message,
	}
}

type ExportRequestResponse struct {
	ExportRequest exportrequest.ExportRequest `json:"export_request"`
}

type ExportRequestsResponse struct {
	ExportRequests []exportrequest.ExportRequest `json:"export_requests"`
}
