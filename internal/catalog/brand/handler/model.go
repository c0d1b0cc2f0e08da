package brandhandler

import "github.com/xw1nchester/foodcatalog-backend/internal/catalog/brand"

type CreateBrandRequest struct {
	NameEn        string  `json:"name_en" form:"name_en" validate:"required"`
	NameAr        string  `json:"name_ar" form:"name_ar" validate:"required"`
	DescriptionEn string  `json:"description_en" form:"description_en"`
	DescriptionAr string  `json:"description_ar" form:"description_ar"`
	TextEn        string  `json:"text_en" form:"text_en"`
	TextAr        string  `json:"text_ar" form:"text_ar"`
	Color         string  `json:"color" form:"color"`
	MainImage     *string `json:"main_image" form:"main_image"`
	Banner        *string `json:"banner" form:"banner"`
	SmallImage    *string `json:"small_image" form:"small_image"`
}

func (br *CreateBrandRequest) ToDomain() brand.Brand {
	b := brand.Brand{
		NameEn:        br.NameEn,
		NameAr:        br.NameAr,
		DescriptionEn: br.DescriptionEn,
		DescriptionAr: br.DescriptionAr,
		TextEn:        br.TextEn,
		TextAr:        br.TextAr,
		Color:         br.Color,
	}

	brand.Patch{
		MainImage:  br.MainImage,
		Banner:     br.Banner,
		SmallImage: br.SmallImage,
	}.Apply(&b)

	return b
}

type UpdateBrandRequest struct {
	NameEn        *string `json:"name_en" form:"name_en" validate:"omitnil,min=1"`
	NameAr        *string `json:"name_ar" form:"name_ar" validate:"omitnil,min=1"`
	DescriptionEn *string `json:"description_en" form:"description_en"`
	DescriptionAr *string `json:"description_ar" form:"description_ar"`
	TextEn        *string `json:"text_en" form:"text_en"`
	TextAr        *string `json:"text_ar" form:"text_ar"`
	Color         *string `json:"color" form:"color"`
	MainImage     *string `json:"main_image" form:"main_image"`
	Banner        *string `json:"banner" form:"banner"`
	SmallImage    *string `json:"small_image" form:"small_image"`
}

func (br *UpdateBrandRequest) ToPatch() brand.Patch {
	return brand.Patch{
		NameEn:        br.NameEn,
		NameAr:        br.NameAr,
		DescriptionEn: br.DescriptionEn,
		DescriptionAr: br.DescriptionAr,
		TextEn:        br.TextEn,
		TextAr:        br.TextAr,
		Color:         br.Color,
		MainImage:     br.MainImage,
		Banner:        br.Banner,
		SmallImage:    br.SmallImage,
	}
}

type BrandResponse struct {
	Brand brand.Brand `json:"brand"`
}

type BrandsResponse struct {
	Brands []brand.Brand `json:"brands"`
}
