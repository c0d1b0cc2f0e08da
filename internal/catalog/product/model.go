package product

import (
	"time"

	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand"
	"github.com/xw1nchester/foodcatalog-backend/internal/catalog/category"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
)

type Product struct {
	ID            int                       `json:"id"`
	CategoryID    int                       `json:"category_id"`
	Category      *category.CategorySummary `json:"category,omitempty"`
	Brand         *brand.BrandSummary       `json:"brand,omitempty"`
	NameEn        string                    `json:"name_en"`
	NameAr        string                    `json:"name_ar"`
	DescriptionEn string                    `json:"description_en"`
	DescriptionAr string                    `json:"description_ar"`
	Color         string                    `json:"color"`
	Image         *string                   `json:"image"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

func (p *Product) Images() []*string {
	return []*string{p.Image}
}

// ProductSummary is embedded in recipes.
type ProductSummary struct {
	ID     int     `json:"id"`
	NameEn string  `json:"name_en"`
	NameAr string  `json:"name_ar"`
	Image  *string `json:"image"`
}

type Filter struct {
	CategoryID *int
	BrandID    *int
}

type Patch struct {
	CategoryID    *int
	NameEn        *string
	NameAr        *string
	DescriptionEn *string
	DescriptionAr *string
	Color         *string
	Image         *string
}

func (p Patch) Apply(pr *Product) {
	utils.Assign(&pr.CategoryID, p.CategoryID)
	utils.Assign(&pr.NameEn, p.NameEn)
	utils.Assign(&pr.NameAr, p.NameAr)
	utils.Assign(&pr.DescriptionEn, p.DescriptionEn)
	utils.Assign(&pr.DescriptionAr, p.DescriptionAr)
	utils.Assign(&pr.Color, p.Color)
	utils.AssignPath(&pr.Image, p.Image)
}

type Uploads struct {
	Image *storage.Upload
}

func (u Uploads) Close() {
	u.Image.Close()
}
