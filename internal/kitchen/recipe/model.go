package recipe

import (
	"time"

	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/product"
	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dish"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
)

// Step is one bilingual entry of an ingredient list or of the instructions.
type Step struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

type Recipe struct {
	ID           int                     `json:"id"`
	DishID       int                     `json:"dish_id"`
	Dish         *dish.DishSummary       `json:"dish,omitempty"`
	ProductID    *int                    `json:"product_id"`
	Product      *product.ProductSummary `json:"product,omitempty"`
	Level        string                  `json:"level"`
	PrepTime     int                     `json:"prep_time"`
	CookingTime  int                     `json:"cooking_time"`
	Servings     int                     `json:"servings"`
	Image        *string                 `json:"image"`
	Ingredients  []Step                  `json:"ingredients"`
	Instructions []Step                  `json:"instructions"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func (r *Recipe) Images() []*string {
	return []*string{r.Image}
}

// Normalize stores empty lists as [] rather than null.
func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = []Step{}
	}

	if r.Instructions == nil {
		r.Instructions = []Step{}
	}
}

type Filter struct {
	DishID    *int
	ProductID *int
}

// Patch holds the fields of an update. A zero ProductID unlinks the product
// and an empty Image path clears the image.
type Patch struct {
	DishID       *int
	ProductID    *int
	Level        *string
	PrepTime     *int
	CookingTime  *int
	Servings     *int
	Image        *string
	Ingredients  *[]Step
	Instructions *[]Step
}

func (p Patch) Apply(r *Recipe) {
	utils.Assign(&r.DishID, p.DishID)
	utils.AssignOptional(&r.ProductID, p.ProductID)
	utils.Assign(&r.Level, p.Level)
	utils.Assign(&r.PrepTime, p.PrepTime)
	utils.Assign(&r.CookingTime, p.CookingTime)
	utils.Assign(&r.Servings, p.Servings)
	utils.AssignPath(&r.Image, p.Image)
	utils.Assign(&r.Ingredients, p.Ingredients)
	utils.Assign(&r.Instructions, p.Instructions)
}

type Uploads struct {
	Image *storage.Upload
}

func (u Uploads) Close() {
	u.Image.Close()
}
