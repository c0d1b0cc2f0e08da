package producthandler

import (
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/product"
	"github.com/xw1nchester/foodcatalog-backend/pkg/types"
)

type CreateProductRequest struct {
	CategoryID    types.IntOrString `json:"category_id" form:"category_id" validate:"required,gt=0" swaggertype:"integer"`
	NameEn        string            `json:"name_en" form:"name_en" validate:"required"`
	NameAr        string            `json:"name_ar" form:"name_ar" validate:"required"`
	DescriptionEn string            `json:"description_en" form:"description_en"`
	DescriptionAr string            `json:"description_ar" form:"description_ar"`
	Color         string            `json:"color" form:"color"`
	Image         *string           `json:"image" form:"image"`
}

func (pr *CreateProductRequest) ToDomain() product.Product {
	p := product.Product{
		CategoryID:    int(pr.CategoryID),
		NameEn:        pr.NameEn,
		NameAr:        pr.NameAr,
		DescriptionEn: pr.DescriptionEn,
		DescriptionAr: pr.DescriptionAr,
		Color:         pr.Color,
	}

	product.Patch{Image: pr.Image}.Apply(&p)

	return p
}

type UpdateProductRequest struct {
	CategoryID    *types.IntOrString `json:"category_id" form:"category_id" validate:"omitnil,gt=0" swaggertype:"integer"`
	NameEn        *string            `json:"name_en" form:"name_en" validate:"omitnil,min=1"`
	NameAr        *string            `json:"name_ar" form:"name_ar" validate:"omitnil,min=1"`
	DescriptionEn *string            `json:"description_en" form:"description_en"`
	DescriptionAr *string            `json:"description_ar" form:"description_ar"`
	Color         *string            `json:"color" form:"color"`
	Image         *string            `json:"image" form:"image"`
}

func (pr *UpdateProductRequest) ToPatch() product.Patch {
	return product.Patch{
		CategoryID:    types.IntPtr(pr.CategoryID),
		NameEn:        pr.NameEn,
		NameAr:        pr.NameAr,
		DescriptionEn: pr.DescriptionEn,
		DescriptionAr: pr.DescriptionAr,
		Color:         pr.Color,
		Image:         pr.Image,
	}
}

type ProductResponse struct {
	Product product.Product `json:"product"`
}

type ProductsResponse struct {
	Products []product.Product `json:"products"`
}
