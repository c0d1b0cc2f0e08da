package dishcategory

import (
	"time"

	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
)

type DishCategory struct {
	ID        int       `json:"id"`
	NameEn    string    `json:"name_en"`
	NameAr    string    `json:"name_ar"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (dc *DishCategory) Images() []*string {
	return []*string{dc.Image}
}

type DishCategorySummary struct {
	ID     int    `json:"id"`
	NameEn string `json:"name_en"`
	NameAr string `json:"name_ar"`
}

type Patch struct {
	NameEn *string
	NameAr *string
	Image  *string
}

func (p Patch) Apply(dc *DishCategory) {
	utils.Assign(&dc.NameEn, p.NameEn)
	utils.Assign(&dc.NameAr, p.NameAr)
	utils.AssignPath(&dc.Image, p.Image)
}

type Uploads struct {
	Image *storage.Upload
}

func (u Uploads) Close() {
	u.Image.Close()
}
