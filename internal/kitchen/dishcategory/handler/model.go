package dishcategoryhandler

import "github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dishcategory"

type CreateDishCategoryRequest struct {
	NameEn string  `json:"name_en" form:"name_en" validate:"required"`
	NameAr string  `json:"name_ar" form:"name_ar" validate:"required"`
	Image  *string `json:"image" form:"image"`
}

func (dr *CreateDishCategoryRequest) ToDomain() dishcategory.DishCategory {
	dc := dishcategory.DishCategory{
		NameEn: dr.NameEn,
		NameAr: dr.NameAr,
	}

	dishcategory.Patch{Image: dr.Image}.Apply(&dc)

	return dc
}

type UpdateDishCategoryRequest struct {
	NameEn *string `json:"name_en" form:"name_en" validate:"omitnil,min=1"`
	NameAr *string `json:"name_ar" form:"name_ar" validate:"omitnil,min=1"`
	Image  *string `json:"image" form:"image"`
}

func (dr *UpdateDishCategoryRequest) ToPatch() dishcategory.Patch {
	return dishcategory.Patch{
		NameEn: dr.NameEn,
		NameAr: dr.NameAr,
		Image:  dr.Image,
	}
}

type DishCategoryResponse struct {
	DishCategory dishcategory.DishCategory `json:"dish_category"`
}

type DishCategoriesResponse struct {
	DishCategories []dishcategory.DishCategory `json:"dish_categories"`
}
