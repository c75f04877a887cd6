package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	helper "tenderoutes_backend/internals/helpers"

	"tenderoutes_backend/internals/features/packages/packages/dto"
	"tenderoutes_backend/internals/features/packages/packages/model"
)

/* ==============================
   INPUT TERKETIK
   Pointer nil = field tidak hadir di request. Semua sub-field kompleks
   sudah fully decoded di sini, controller tinggal merge + persist.
============================== */

type PackageInput struct {
	PackageType *string

	TitleEn        *string
	TitleAr        *string
	DescriptionEn  *string
	DescriptionAr  *string
	DestinationsEn *string
	DestinationsAr *string

	Nights       *int
	Days         *int
	Rating       *float64
	ReviewsCount *int
	Discount     *int
	IsFeatured   *bool

	Price         *float64
	OriginalPrice *float64

	Itinerary  *[]model.ItineraryDay
	Inclusions *[]model.LocalizedText
	Exclusions *[]model.LocalizedText
	Overview   *model.LocalizedText
	Highlights *[]model.LocalizedText
	Faqs       *[]model.FAQItem

	MetaTitle       *model.LocalizedText
	MetaDescription *model.LocalizedText
	MetaKeywords    *model.LocalizedText
	CanonicalURL    *string

	SlugEn *string
	SlugAr *string
}

/* ==============================
   DECODE PAYLOAD → INPUT
============================== */

// FromPayload men-decode sub-field maybe-JSON dengan kebijakan per-field:
// itinerary/inclusions/exclusions wajib valid (fail-hard → 400), sisanya
// fail-soft: decode gagal cuma di-log dan field dianggap tidak hadir,
// supaya input opsional yang rusak tidak menghapus data tersimpan.
func FromPayload(p dto.PackagePayload) (PackageInput, map[string][]string) {
	in := PackageInput{
		PackageType:    p.PackageType,
		TitleEn:        p.TitleEn,
		TitleAr:        p.TitleAr,
		DescriptionEn:  p.DescriptionEn,
		DescriptionAr:  p.DescriptionAr,
		DestinationsEn: p.DestinationsEn,
		DestinationsAr: p.DestinationsAr,
		Nights:         p.Nights,
		Days:           p.Days,
		Rating:         p.Rating,
		ReviewsCount:   p.ReviewsCount,
		Discount:       p.Discount,
		IsFeatured:     p.IsFeatured,
		Price:          p.Price,
		OriginalPrice:  p.OriginalPrice,
		CanonicalURL:   p.CanonicalURL,
		SlugEn:         p.SlugEn,
		SlugAr:         p.SlugAr,
	}
	fieldErrs := map[string][]string{}

	// fail-hard: detail struktural
	if len(p.Itinerary) > 0 {
		var v []model.ItineraryDay
		if err := helper.DecodeMaybeJSON(p.Itinerary, &v); err != nil {
			fieldErrs["itinerary"] = append(fieldErrs["itinerary"], "format itinerary tidak valid")
		} else {
			in.Itinerary = &v
		}
	}
	if len(p.Inclusions) > 0 {
		var v []model.LocalizedText
		if err := helper.DecodeMaybeJSON(p.Inclusions, &v); err != nil {
			fieldErrs["inclusions"] = append(fieldErrs["inclusions"], "format inclusions tidak valid")
		} else {
			in.Inclusions = &v
		}
	}
	if len(p.Exclusions) > 0 {
		var v []model.LocalizedText
		if err := helper.DecodeMaybeJSON(p.Exclusions, &v); err != nil {
			fieldErrs["exclusions"] = append(fieldErrs["exclusions"], "format exclusions tidak valid")
		} else {
			in.Exclusions = &v
		}
	}

	// fail-soft: deskriptif opsional
	if len(p.Overview) > 0 {
		var v model.LocalizedText
		if err := helper.DecodeMaybeJSON(p.Overview, &v); err != nil {
			log.Printf("[WARN] overview tidak valid, dilewati: %v", err)
		} else {
			in.Overview = &v
		}
	}
	if len(p.Highlights) > 0 {
		var v []model.LocalizedText
		if err := helper.DecodeMaybeJSON(p.Highlights, &v); err != nil {
			log.Printf("[WARN] highlights tidak valid, dilewati: %v", err)
		} else {
			in.Highlights = &v
		}
	}
	if len(p.Faqs) > 0 {
		var v []model.FAQItem
		if err := helper.DecodeMaybeJSON(p.Faqs, &v); err != nil {
			log.Printf("[WARN] faqs tidak valid, dilewati: %v", err)
		} else {
			in.Faqs = &v
		}
	}
	if len(p.MetaTitle) > 0 {
		var v model.LocalizedText
		if err := helper.DecodeMaybeJSON(p.MetaTitle, &v); err != nil {
			log.Printf("[WARN] metaTitle tidak valid, dilewati: %v", err)
		} else {
			in.MetaTitle = &v
		}
	}
	if len(p.MetaDescription) > 0 {
		var v model.LocalizedText
		if err := helper.DecodeMaybeJSON(p.MetaDescription, &v); err != nil {
			log.Printf("[WARN] metaDescription tidak valid, dilewati: %v", err)
		} else {
			in.MetaDescription = &v
		}
	}
	if len(p.MetaKeywords) > 0 {
		var v model.LocalizedText
		if err := helper.DecodeMaybeJSON(p.MetaKeywords, &v); err != nil {
			log.Printf("[WARN] metaKeywords tidak valid, dilewati: %v", err)
		} else {
			in.MetaKeywords = &v
		}
	}

	return in, fieldErrs
}

/* ==============================
   VALIDASI
============================== */

// ValidateRequired dipakai di create: semua field wajib dilaporkan
// sekaligus dalam satu response.
func ValidateRequired(in PackageInput) map[string][]string {
	errs := map[string][]string{}

	requireStr := func(key string, v *string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			errs[key] = append(errs[key], "wajib diisi")
		}
	}

	requireStr("packageType", in.PackageType)
	requireStr("titleEn", in.TitleEn)
	requireStr("titleAr", in.TitleAr)
	requireStr("descriptionEn", in.DescriptionEn)
	requireStr("descriptionAr", in.DescriptionAr)
	requireStr("destinationsEn", in.DestinationsEn)
	requireStr("destinationsAr", in.DestinationsAr)

	if in.Nights == nil {
		errs["nights"] = append(errs["nights"], "wajib diisi")
	}
	if in.Days == nil {
		errs["days"] = append(errs["days"], "wajib diisi")
	}

	return errs
}

// ValidateRanges dipakai create maupun update.
func ValidateRanges(in PackageInput) map[string][]string {
	errs := map[string][]string{}

	if in.PackageType != nil && !model.IsValidPackageType(*in.PackageType) {
		errs["packageType"] = append(errs["packageType"],
			fmt.Sprintf("harus salah satu dari: %s, %s, %s",
				model.PackageTypeStandard, model.PackageTypePremium, model.PackageTypeLuxury))
	}
	if in.Nights != nil && *in.Nights < 0 {
		errs["nights"] = append(errs["nights"], "tidak boleh negatif")
	}
	if in.Days != nil && *in.Days < 0 {
		errs["days"] = append(errs["days"], "tidak boleh negatif")
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		errs["rating"] = append(errs["rating"], "harus di rentang 0 sampai 5")
	}
	if in.ReviewsCount != nil && *in.ReviewsCount < 0 {
		errs["reviewsCount"] = append(errs["reviewsCount"], "tidak boleh negatif")
	}

	return errs
}

/* ==============================
   BUILD & MERGE (murni, tanpa DB)
============================== */

func marshalJSONB(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// BuildPackage merakit record baru dari input yang sudah tervalidasi.
// Slug diisi controller (butuh cek keunikan di DB). createdAt = updatedAt.
func BuildPackage(in PackageInput, now time.Time) (model.PackageModel, error) {
	m := model.PackageModel{
		PackageType:           *in.PackageType,
		PackageTitleEn:        *in.TitleEn,
		PackageTitleAr:        *in.TitleAr,
		PackageDescriptionEn:  *in.DescriptionEn,
		PackageDescriptionAr:  *in.DescriptionAr,
		PackageDestinationsEn: *in.DestinationsEn,
		PackageDestinationsAr: *in.DestinationsAr,
		PackageNights:         *in.Nights,
		PackageDays:           *in.Days,
		PackageCreatedAt:      now,
		PackageUpdatedAt:      now,
	}

	if in.Rating != nil {
		m.PackageRating = *in.Rating
	}
	if in.ReviewsCount != nil {
		m.PackageReviewsCount = *in.ReviewsCount
	}
	if in.Discount != nil {
		m.PackageDiscount = *in.Discount
	}
	if in.IsFeatured != nil {
		m.PackageIsFeatured = *in.IsFeatured
	}
	if in.Price != nil {
		m.PackagePrice = *in.Price
	}
	if in.OriginalPrice != nil {
		m.PackageOriginalPrice = *in.OriginalPrice
	}
	if in.Overview != nil {
		m.PackageOverviewEn = in.Overview.En
		m.PackageOverviewAr = in.Overview.Ar
	}
	if in.MetaTitle != nil {
		m.PackageMetaTitleEn = in.MetaTitle.En
		m.PackageMetaTitleAr = in.MetaTitle.Ar
	}
	if in.MetaDescription != nil {
		m.PackageMetaDescriptionEn = in.MetaDescription.En
		m.PackageMetaDescriptionAr = in.MetaDescription.Ar
	}
	if in.MetaKeywords != nil {
		m.PackageMetaKeywordsEn = in.MetaKeywords.En
		m.PackageMetaKeywordsAr = in.MetaKeywords.Ar
	}
	if in.CanonicalURL != nil {
		m.PackageCanonicalURL = *in.CanonicalURL
	}

	itinerary := []model.ItineraryDay{}
	if in.Itinerary != nil {
		itinerary = *in.Itinerary
	}
	inclusions := []model.LocalizedText{}
	if in.Inclusions != nil {
		inclusions = *in.Inclusions
	}
	exclusions := []model.LocalizedText{}
	if in.Exclusions != nil {
		exclusions = *in.Exclusions
	}
	highlights := []model.LocalizedText{}
	if in.Highlights != nil {
		highlights = *in.Highlights
	}
	faqs := []model.FAQItem{}
	if in.Faqs != nil {
		faqs = *in.Faqs
	}

	var err error
	if m.PackageItinerary, err = marshalJSONB(itinerary); err != nil {
		return m, err
	}
	if m.PackageInclusions, err = marshalJSONB(inclusions); err != nil {
		return m, err
	}
	if m.PackageExclusions, err = marshalJSONB(exclusions); err != nil {
		return m, err
	}
	if m.PackageHighlights, err = marshalJSONB(highlights); err != nil {
		return m, err
	}
	if m.PackageFaqs, err = marshalJSONB(faqs); err != nil {
		return m, err
	}

	return m, nil
}

// ApplyUpdate menerapkan partial update ke salinan record: hanya field yang
// hadir yang disentuh, leaf bilingual di-set per bahasa, koleksi diganti
// utuh. updatedAt selalu di-bump, meskipun tidak ada field lain berubah.
// Murni read-modify-write, tidak ada mutate-then-save gaya ORM.
func ApplyUpdate(m *model.PackageModel, in PackageInput, now time.Time) error {
	if in.PackageType != nil {
		m.PackageType = *in.PackageType
	}
	if in.TitleEn != nil {
		m.PackageTitleEn = *in.TitleEn
	}
	if in.TitleAr != nil {
		m.PackageTitleAr = *in.TitleAr
	}
	if in.DescriptionEn != nil {
		m.PackageDescriptionEn = *in.DescriptionEn
	}
	if in.DescriptionAr != nil {
		m.PackageDescriptionAr = *in.DescriptionAr
	}
	if in.DestinationsEn != nil {
		m.PackageDestinationsEn = *in.DestinationsEn
	}
	if in.DestinationsAr != nil {
		m.PackageDestinationsAr = *in.DestinationsAr
	}
	if in.Nights != nil {
		m.PackageNights = *in.Nights
	}
	if in.Days != nil {
		m.PackageDays = *in.Days
	}
	if in.Rating != nil {
		m.PackageRating = *in.Rating
	}
	if in.ReviewsCount != nil {
		m.PackageReviewsCount = *in.ReviewsCount
	}
	if in.Discount != nil {
		m.PackageDiscount = *in.Discount
	}
	if in.IsFeatured != nil {
		m.PackageIsFeatured = *in.IsFeatured
	}
	if in.Price != nil {
		m.PackagePrice = *in.Price
	}
	if in.OriginalPrice != nil {
		m.PackageOriginalPrice = *in.OriginalPrice
	}
	if in.Overview != nil {
		m.PackageOverviewEn = in.Overview.En
		m.PackageOverviewAr = in.Overview.Ar
	}
	if in.MetaTitle != nil {
		m.PackageMetaTitleEn = in.MetaTitle.En
		m.PackageMetaTitleAr = in.MetaTitle.Ar
	}
	if in.MetaDescription != nil {
		m.PackageMetaDescriptionEn = in.MetaDescription.En
		m.PackageMetaDescriptionAr = in.MetaDescription.Ar
	}
	if in.MetaKeywords != nil {
		m.PackageMetaKeywordsEn = in.MetaKeywords.En
		m.PackageMetaKeywordsAr = in.MetaKeywords.Ar
	}
	if in.CanonicalURL != nil {
		m.PackageCanonicalURL = *in.CanonicalURL
	}
	if in.SlugEn != nil {
		m.PackageSlugEn = *in.SlugEn
	}
	if in.SlugAr != nil {
		m.PackageSlugAr = *in.SlugAr
	}

	var err error
	if in.Itinerary != nil {
		if m.PackageItinerary, err = marshalJSONB(*in.Itinerary); err != nil {
			return err
		}
	}
	if in.Inclusions != nil {
		if m.PackageInclusions, err = marshalJSONB(*in.Inclusions); err != nil {
			return err
		}
	}
	if in.Exclusions != nil {
		if m.PackageExclusions, err = marshalJSONB(*in.Exclusions); err != nil {
			return err
		}
	}
	if in.Highlights != nil {
		if m.PackageHighlights, err = marshalJSONB(*in.Highlights); err != nil {
			return err
		}
	}
	if in.Faqs != nil {
		if m.PackageFaqs, err = marshalJSONB(*in.Faqs); err != nil {
			return err
		}
	}

	m.PackageUpdatedAt = now
	return nil
}
