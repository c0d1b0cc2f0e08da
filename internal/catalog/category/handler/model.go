package categoryhandler

import (
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/category"
	"github.com/xw1nchester/foodcatalog-backend/pkg/types"
)

type CreateCategoryRequest struct {
	BrandID       types.IntOrString `json:"brand_id" form:"brand_id" validate:"required,gt=0" swaggertype:"integer"`
	NameEn        string            `json:"name_en" form:"name_en" validate:"required"`
	NameAr        string            `json:"name_ar" form:"name_ar" validate:"required"`
	DescriptionEn string            `json:"description_en" form:"description_en"`
	DescriptionAr string            `json:"description_ar" form:"description_ar"`
	Image         string            `json:"image" form:"image"`
}

func (cr *CreateCategoryRequest) ToDomain() category.Category {
	return category.Category{
		BrandID:       int(cr.BrandID),
		NameEn:        cr.NameEn,
		NameAr:        cr.NameAr,
		DescriptionEn: cr.DescriptionEn,
		DescriptionAr: cr.DescriptionAr,
		Image:         cr.Image,
	}
}

type UpdateCategoryRequest struct {
	BrandID       *types.IntOrString `json:"brand_id" form:"brand_id" validate:"omitnil,gt=0" swaggertype:"integer"`
	NameEn        *string            `json:"name_en" form:"name_en" validate:"omitnil,min=1"`
	NameAr        *string            `json:"name_ar" form:"name_ar" validate:"omitnil,min=1"`
	DescriptionEn *string            `json:"description_en" form:"description_en"`
	DescriptionAr *string            `json:"description_ar" form:"description_ar"`
	Image         *string            `json:"image" form:"image" validate:"omitnil,min=1"`
}

func (cr *UpdateCategoryRequest) ToPatch() category.Patch {
	return category.Patch{
		BrandID:       types.IntPtr(cr.BrandID),
		NameEn:        cr.NameEn,
		NameAr:        cr.NameAr,
		DescriptionEn: cr.DescriptionEn,
		DescriptionAr: cr.DescriptionAr,
		Image:         cr.Image,
	}
}

type CategoryResponse struct {
	Category category.Category `json:"category"`
}

type CategoriesResponse struct {
	Categories []category.Category `json:"categories"`
}
