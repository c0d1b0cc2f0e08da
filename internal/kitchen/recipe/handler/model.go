package recipehandler

import (
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/recipe"
	"github.com/xw1nchester/foodcatalog-backend/pkg/types"
)

// Multipart bodies carry ingredients and instructions as JSON encoded values.
type CreateRecipeRequest struct {
	DishID       types.IntOrString  `json:"dish_id" form:"dish_id" validate:"required,gt=0" swaggertype:"integer"`
	ProductID    *types.IntOrString `json:"product_id" form:"product_id" validate:"omitnil,gt=0" swaggertype:"integer"`
	Level        string             `json:"level" form:"level"`
	PrepTime     int                `json:"prep_time" form:"prep_time" validate:"gte=0"`
	CookingTime  int                `json:"cooking_time" form:"cooking_time" validate:"gte=0"`
	Servings     int                `json:"servings" form:"servings" validate:"gte=0"`
	Image        *string            `json:"image" form:"image"`
	Ingredients  []recipe.Step      `json:"ingredients" form:"-"`
	Instructions []recipe.Step      `json:"instructions" form:"-"`
}

func (rr *CreateRecipeRequest) ToDomain() recipe.Recipe {
	rc := recipe.Recipe{
		DishID:       int(rr.DishID),
		ProductID:    types.IntPtr(rr.ProductID),
		Level:        rr.Level,
		PrepTime:     rr.PrepTime,
		CookingTime:  rr.CookingTime,
		Servings:     rr.Servings,
		Ingredients:  rr.Ingredients,
		Instructions: rr.Instructions,
	}

	recipe.Patch{Image: rr.Image}.Apply(&rc)

	return rc
}

// UpdateRecipeRequest unlinks the product when product_id is 0.
type UpdateRecipeRequest struct {
	DishID       *types.IntOrString `json:"dish_id" form:"dish_id" validate:"omitnil,gt=0" swaggertype:"integer"`
	ProductID    *types.IntOrString `json:"product_id" form:"product_id" validate:"omitnil,gte=0" swaggertype:"integer"`
	Level        *string            `json:"level" form:"level"`
	PrepTime     *int               `json:"prep_time" form:"prep_time" validate:"omitnil,gte=0"`
	CookingTime  *int               `json:"cooking_time" form:"cooking_time" validate:"omitnil,gte=0"`
	Servings     *int               `json:"servings" form:"servings" validate:"omitnil,gte=0"`
	Image        *string            `json:"image" form:"image"`
	Ingredients  *[]recipe.Step     `json:"ingredients" form:"-"`
	Instructions *[]recipe.Step     `json:"instructions" form:"-"`
}

func (rr *UpdateRecipeRequest) ToPatch() recipe.Patch {
	return recipe.Patch{
		DishID:       types.IntPtr(rr.DishID),
		ProductID:    types.IntPtr(rr.ProductID),
		Level:        rr.Level,
		PrepTime:     rr.PrepTime,
		CookingTime:  rr.CookingTime,
		Servings:     rr.Servings,
		Image:        rr.Image,
		Ingredients:  rr.Ingredients,
		Instructions: rr.Instructions,
	}
}

type RecipeResponse struct {
	Recipe recipe.Recipe `json:"recipe"`
}

type RecipesResponse struct {
	Recipes []recipe.Recipe `json:"recipes"`
}
