package dishhandler

import (
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish"
	"github.com/xw1nchester/foodcatalog-backend/pkg/types"
)

type CreateDishRequest struct {
	DishCategoryID types.IntOrString `json:"dish_category_id" form:"dish_category_id" validate:"required,gt=0" swaggertype:"integer"`
	NameEn         string            `json:"name_en" form:"name_en" validate:"required"`
	NameAr         string            `json:"name_ar" form:"name_ar" validate:"required"`
	Image          *string           `json:"image" form:"image"`
}

func (dr *CreateDishRequest) ToDomain() dish.Dish {
	d := dish.Dish{
		DishCategoryID: int(dr.DishCategoryID),
		NameEn:         dr.NameEn,
		NameAr:         dr.NameAr,
	}

	dish.Patch{Image: dr.Image}.Apply(&d)

	return d
}

type UpdateDishRequest struct {
	DishCategoryID *types.IntOrString `json:"dish_category_id" form:"dish_category_id" validate:"omitnil,gt=0" swaggertype:"integer"`
	NameEn         *string            `json:"name_en" form:"name_en" validate:"omitnil,min=1"`
	NameAr         *string            `json:"name_ar" form:"name_ar" validate:"omitnil,min=1"`
	Image          *string            `json:"image" form:"image"`
}

func (dr *UpdateDishRequest) ToPatch() dish.Patch {
	return dish.Patch{
		DishCategoryID: types.IntPtr(dr.DishCategoryID),
		NameEn:         dr.NameEn,
		NameAr:         dr.NameAr,
		Image:          dr.Image,
	}
}

type DishResponse struct {
	Dish dish.Dish `json:"dish"`
}

type DishesResponse struct {
	Dishes []dish.Dish `json:"dishes"`
}
