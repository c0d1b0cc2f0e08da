package category

import (
	"time"

	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
)

type Category struct {
	ID            int                 `json:"id"`
	BrandID       int                 `json:"brand_id"`
	Brand         *brand.BrandSummary `json:"brand,omitempty"`
	NameEn        string              `json:"name_en"`
	NameAr        string              `json:"name_ar"`
	DescriptionEn string              `json:"description_en"`
	DescriptionAr string              `json:"description_ar"`
	Image         string              `json:"image"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (c *Category) Images() []*string {
	return []*string{&c.Image}
}

type CategorySummary struct {
	ID     int    `json:"id"`
	NameEn string `json:"name_en"`
	NameAr string `json:"name_ar"`
}

type Filter struct {
	BrandID *int
}

type Patch struct {
	BrandID       *int
	NameEn        *string
	NameAr        *string
	DescriptionEn *string
	DescriptionAr *string
	Image         *string
}

func (p Patch) Apply(c *Category) {
	utils.Assign(&c.BrandID, p.BrandID)
	utils.Assign(&c.NameEn, p.NameEn)
	utils.Assign(&c.NameAr, p.NameAr)
	utils.Assign(&c.DescriptionEn, p.DescriptionEn)
	utils.Assign(&c.DescriptionAr, p.DescriptionAr)
	utils.Assign(&c.Image, p.Image)
}

type Uploads struct {
	Image *storage.Upload
}

func (u Uploads) Close() {
	u.Image.Close()
}
