package dish

import (
	"time"

	"github.com/xw1nchester/foodcatalog-backend/internal/kitchen/dishcategory"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
)

type Dish struct {
	ID             int                               `json:"id"`
	DishCategoryID int                               `json:"dish_category_id"`
	DishCategory   *dishcategory.DishCategorySummary `json:"dish_category,omitempty"`
	NameEn         string                            `json:"name_en"`
	NameAr         string                            `json:"name_ar"`
	Image          *string                           `json:"image"`
	CreatedAt      time.Time                         `json:"created_at"`
	UpdatedAt      time.Time                         `json:"updated_at"`
}

func (d *Dish) Images() []*string {
	return []*string{d.Image}
}

// DishSummary is embedded in recipes, which take their display name from the dish.
type DishSummary struct {
	ID     int     `json:"id"`
	NameEn string  `json:"name_en"`
	NameAr string  `json:"name_ar"`
	Image  *string `json:"image"`
}

type Filter struct {
	DishCategoryID *int
}

type Patch struct {
	DishCategoryID *int
	NameEn         *string
	NameAr         *string
	Image          *string
}

func (p Patch) Apply(d *Dish) {
	utils.Assign(&d.DishCategoryID, p.DishCategoryID)
	utils.Assign(&d.NameEn, p.NameEn)
	utils.Assign(&d.NameAr, p.NameAr)
	utils.AssignPath(&d.Image, p.Image)
}

type Uploads struct {
	Image *storage.Upload
}

func (u Uploads) Close() {
	u.Image.Close()
}
