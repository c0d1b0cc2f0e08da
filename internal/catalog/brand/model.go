package brand

import (
	"time"

	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
	"github.com/xw1nchester/foodcatalog-backend/pkg/utils"
)

type Brand struct {
	ID            int       `json:"id"`
	Slug          string    `json:"slug"`
	NameEn        string    `json:"name_en"`
	NameAr        string    `json:"name_ar"`
	DescriptionEn string    `json:"description_en"`
	DescriptionAr string    `json:"description_ar"`
	TextEn        string    `json:"text_en"`
	TextAr        string    `json:"text_ar"`
	Color         string    `json:"color"`
	MainImage     *string   `json:"main_image"`
	Banner        *string   `json:"banner"`
	SmallImage    *string   `json:"small_image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (b *Brand) Images() []*string {
	return []*string{b.MainImage, b.Banner, b.SmallImage}
}

// BrandSummary is embedded in categories and products.
type BrandSummary struct {
	ID     int    `json:"id"`
	Slug   string `json:"slug"`
	NameEn string `json:"name_en"`
	NameAr string `json:"name_ar"`
	Color  string `json:"color"`
}

// Patch holds the fields of an update; nil fields keep their stored value.
// An empty image path clears the image.
type Patch struct {
	NameEn        *string
	NameAr        *string
	DescriptionEn *string
	DescriptionAr *string
	TextEn        *string
	TextAr        *string
	Color         *string
	MainImage     *string
	Banner        *string
	SmallImage    *string
}

func (p Patch) Apply(b *Brand) {
	utils.Assign(&b.NameEn, p.NameEn)
	utils.Assign(&b.NameAr, p.NameAr)
	utils.Assign(&b.DescriptionEn, p.DescriptionEn)
	utils.Assign(&b.DescriptionAr, p.DescriptionAr)
	utils.Assign(&b.TextEn, p.TextEn)
	utils.Assign(&b.TextAr, p.TextAr)
	utils.Assign(&b.Color, p.Color)
	utils.AssignPath(&b.MainImage, p.MainImage)
	utils.AssignPath(&b.Banner, p.Banner)
	utils.AssignPath(&b.SmallImage, p.SmallImage)
}

// Uploads are image files sent with a multipart request. They take precedence
// over paths of the same field.
type Uploads struct {
	MainImage  *storage.Upload
	Banner     *storage.Upload
	SmallImage *storage.Upload
}

func (u Uploads) Close() {
	u.MainImage.Close()
	u.Banner.Close()
	u.SmallImage.Close()
}
