package dto

import (
	"encoding/json"
	"mime/multipart"
	"time"

	helper "tenderoutes_backend/internals/helpers"

	"tenderoutes_backend/internals/features/packages/packages/model"
)

/* ==============================
   REQUEST (POST /packages, PUT /packages/:id)
   Field pointer/RawMessage = hadir di request atau tidak.
   Sub-field kompleks pakai RawMessage karena bisa datang sebagai
   JSON langsung ATAU string berisi JSON (form multipart lama).
============================== */

type PackagePayload struct {
	PackageType *string `json:"packageType"`

	TitleEn        *string `json:"titleEn"`
	TitleAr        *string `json:"titleAr"`
	DescriptionEn  *string `json:"descriptionEn"`
	DescriptionAr  *string `json:"descriptionAr"`
	DestinationsEn *string `json:"destinationsEn"`
	DestinationsAr *string `json:"destinationsAr"`

	Nights       *int     `json:"nights"`
	Days         *int     `json:"days"`
	Rating       *float64 `json:"rating"`
	ReviewsCount *int     `json:"reviewsCount"`
	Discount     *int     `json:"discount"`
	IsFeatured   *bool    `json:"isFeatured"`

	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`

	Itinerary  json.RawMessage `json:"itinerary,omitempty"`
	Inclusions json.RawMessage `json:"inclusions,omitempty"`
	Exclusions json.RawMessage `json:"exclusions,omitempty"`
	Overview   json.RawMessage `json:"overview,omitempty"`
	Highlights json.RawMessage `json:"highlights,omitempty"`
	Faqs       json.RawMessage `json:"faqs,omitempty"`

	MetaTitle       json.RawMessage `json:"metaTitle,omitempty"`
	MetaDescription json.RawMessage `json:"metaDescription,omitempty"`
	MetaKeywords    json.RawMessage `json:"metaKeywords,omitempty"`
	CanonicalURL    *string         `json:"canonicalUrl"`

	SlugEn *string `json:"slugEn"`
	SlugAr *string `json:"slugAr"`
}

// PayloadFromForm membangun payload dari multipart form. Koersi angka yang
// gagal dikumpulkan per-field (→ 400), bukan di-skip diam-diam.
func PayloadFromForm(form *multipart.Form) (PackagePayload, map[string][]string) {
	var p PackagePayload
	fieldErrs := map[string][]string{}

	strField := func(key string, dst **string) {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			v := vals[0]
			*dst = &v
		}
	}
	intField := func(key string, dst **int) {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			n, present, err := helper.ParseFormInt(key, vals[0])
			if err != nil {
				fieldErrs[key] = append(fieldErrs[key], err.Error())
				return
			}
			if present {
				*dst = &n
			}
		}
	}
	floatField := func(key string, dst **float64) {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			f, present, err := helper.ParseFormFloat(key, vals[0])
			if err != nil {
				fieldErrs[key] = append(fieldErrs[key], err.Error())
				return
			}
			if present {
				*dst = &f
			}
		}
	}
	rawField := func(key string, dst *json.RawMessage) {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 && vals[0] != "" {
			*dst = json.RawMessage(vals[0])
		}
	}

	strField("packageType", &p.PackageType)
	strField("titleEn", &p.TitleEn)
	strField("titleAr", &p.TitleAr)
	strField("descriptionEn", &p.DescriptionEn)
	strField("descriptionAr", &p.DescriptionAr)
	strField("destinationsEn", &p.DestinationsEn)
	strField("destinationsAr", &p.DestinationsAr)
	strField("canonicalUrl", &p.CanonicalURL)
	strField("slugEn", &p.SlugEn)
	strField("slugAr", &p.SlugAr)

	intField("nights", &p.Nights)
	intField("days", &p.Days)
	intField("reviewsCount", &p.ReviewsCount)
	intField("discount", &p.Discount)

	floatField("rating", &p.Rating)
	floatField("price", &p.Price)
	floatField("originalPrice", &p.OriginalPrice)

	if vals, ok := form.Value["isFeatured"]; ok && len(vals) > 0 {
		b := helper.ParseFormBool(vals[0])
		p.IsFeatured = &b
	}

	rawField("itinerary", &p.Itinerary)
	rawField("inclusions", &p.Inclusions)
	rawField("exclusions", &p.Exclusions)
	rawField("overview", &p.Overview)
	rawField("highlights", &p.Highlights)
	rawField("faqs", &p.Faqs)
	rawField("metaTitle", &p.MetaTitle)
	rawField("metaDescription", &p.MetaDescription)
	rawField("metaKeywords", &p.MetaKeywords)

	return p, fieldErrs
}

/* ==============================
   RESPONSE
   Bentuk nested {en, ar} dipertahankan supaya kompatibel dengan
   frontend lama.
============================== */

type DurationResponse struct {
	Nights int `json:"nights"`
	Days   int `json:"days"`
}

type PackageDetailsResponse struct {
	Itinerary     []model.ItineraryDay  `json:"itinerary"`
	Inclusions    []model.LocalizedText `json:"inclusions"`
	Exclusions    []model.LocalizedText `json:"exclusions"`
	Price         float64               `json:"price"`
	OriginalPrice float64               `json:"originalPrice"`
}

type PackageResponse struct {
	PackageID   string              `json:"id"`
	PackageType string              `json:"packageType"`
	Title       model.LocalizedText `json:"title"`
	Description model.LocalizedText `json:"description"`
	Duration    DurationResponse    `json:"duration"`

	Destinations model.LocalizedText `json:"destinations"`
	Rating       float64             `json:"rating"`
	ReviewsCount int                 `json:"reviewsCount"`
	Discount     int                 `json:"discount"`
	IsFeatured   bool                `json:"isFeatured"`

	ImageURL        string `json:"imageUrl"`
	ImagePublicID   string `json:"imagePublicId"`
	OGImageURL      string `json:"ogImage"`
	OGImagePublicID string `json:"ogImagePublicId"`

	Details PackageDetailsResponse `json:"details"`

	Overview   model.LocalizedText   `json:"overview"`
	Highlights []model.LocalizedText `json:"highlights"`
	Faqs       []model.FAQItem       `json:"faqs"`

	MetaTitle       model.LocalizedText `json:"metaTitle"`
	MetaDescription model.LocalizedText `json:"metaDescription"`
	MetaKeywords    model.LocalizedText `json:"metaKeywords"`
	CanonicalURL    string              `json:"canonicalUrl"`
	Slug            model.LocalizedText `json:"slug"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func ToPackageResponse(m model.PackageModel) PackageResponse {
	itinerary := []model.ItineraryDay{}
	inclusions := []model.LocalizedText{}
	exclusions := []model.LocalizedText{}
	highlights := []model.LocalizedText{}
	faqs := []model.FAQItem{}

	// kolom JSONB selalu ditulis lewat service, unmarshal gagal = data
	// korup lama → fallback kosong
	_ = json.Unmarshal(m.PackageItinerary, &itinerary)
	_ = json.Unmarshal(m.PackageInclusions, &inclusions)
	_ = json.Unmarshal(m.PackageExclusions, &exclusions)
	_ = json.Unmarshal(m.PackageHighlights, &highlights)
	_ = json.Unmarshal(m.PackageFaqs, &faqs)

	return PackageResponse{
		PackageID:   m.PackageID.String(),
		PackageType: m.PackageType,
		Title:       model.LocalizedText{En: m.PackageTitleEn, Ar: m.PackageTitleAr},
		Description: model.LocalizedText{En: m.PackageDescriptionEn, Ar: m.PackageDescriptionAr},
		Duration:    DurationResponse{Nights: m.PackageNights, Days: m.PackageDays},

		Destinations: model.LocalizedText{En: m.PackageDestinationsEn, Ar: m.PackageDestinationsAr},
		Rating:       m.PackageRating,
		ReviewsCount: m.PackageReviewsCount,
		Discount:     m.PackageDiscount,
		IsFeatured:   m.PackageIsFeatured,

		ImageURL:        m.PackageImageURL,
		ImagePublicID:   m.PackageImagePublicID,
		OGImageURL:      m.PackageOGImageURL,
		OGImagePublicID: m.PackageOGImagePublicID,

		Details: PackageDetailsResponse{
			Itinerary:     itinerary,
			Inclusions:    inclusions,
			Exclusions:    exclusions,
			Price:         m.PackagePrice,
			OriginalPrice: m.PackageOriginalPrice,
		},

		Overview:   model.LocalizedText{En: m.PackageOverviewEn, Ar: m.PackageOverviewAr},
		Highlights: highlights,
		Faqs:       faqs,

		MetaTitle:       model.LocalizedText{En: m.PackageMetaTitleEn, Ar: m.PackageMetaTitleAr},
		MetaDescription: model.LocalizedText{En: m.PackageMetaDescriptionEn, Ar: m.PackageMetaDescriptionAr},
		MetaKeywords:    model.LocalizedText{En: m.PackageMetaKeywordsEn, Ar: m.PackageMetaKeywordsAr},
		CanonicalURL:    m.PackageCanonicalURL,
		Slug:            model.LocalizedText{En: m.PackageSlugEn, Ar: m.PackageSlugAr},

		CreatedAt: m.PackageCreatedAt.Format(time.RFC3339),
		UpdatedAt: m.PackageUpdatedAt.Format(time.RFC3339),
	}
}

func ToPackageResponseList(items []model.PackageModel) []PackageResponse {
	out := make([]PackageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ToPackageResponse(m))
	}
	return out
}
