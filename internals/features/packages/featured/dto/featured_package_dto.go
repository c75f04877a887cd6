package dto

import (
	"time"

	"github.com/google/uuid"

	"tenderoutes_backend/internals/features/packages/featured/model"
	packageDto "tenderoutes_backend/internals/features/packages/packages/dto"
)

type Localized struct {
	En string `json:"en" validate:"required"`
	Ar string `json:"ar" validate:"required"`
}

/* ==============================
   CREATE (POST /featured-packages)
   Bentuk body mengikuti frontend lama: title/subtitle nested {en, ar}.
============================== */

type CreateFeaturedPackageRequest struct {
	PackageID         uuid.UUID `json:"packageId" validate:"required"`
	Title             Localized `json:"title" validate:"required"`
	Subtitle          Localized `json:"subtitle" validate:"required"`
	DestinationsCount string    `json:"destinationsCount" validate:"required"`
	Order             *int      `json:"order" validate:"omitempty,min=0"`
	IsActive          *bool     `json:"isActive"`
}

func (r CreateFeaturedPackageRequest) ToModel() model.FeaturedPackageModel {
	m := model.FeaturedPackageModel{
		FeaturedPackagePackageID:         r.PackageID,
		FeaturedPackageTitleEn:           r.Title.En,
		FeaturedPackageTitleAr:           r.Title.Ar,
		FeaturedPackageSubtitleEn:        r.Subtitle.En,
		FeaturedPackageSubtitleAr:        r.Subtitle.Ar,
		FeaturedPackageDestinationsCount: r.DestinationsCount,
		FeaturedPackageIsActive:          true,
	}
	if r.Order != nil {
		m.FeaturedPackageOrder = *r.Order
	}
	if r.IsActive != nil {
		m.FeaturedPackageIsActive = *r.IsActive
	}
	return m
}

/* ==============================
   UPDATE (PUT /featured-packages/:id) — partial
============================== */

type UpdateFeaturedPackageRequest struct {
	Title             *Localized `json:"title"`
	Subtitle          *Localized `json:"subtitle"`
	DestinationsCount *string    `json:"destinationsCount"`
	Order             *int       `json:"order" validate:"omitempty,min=0"`
	IsActive          *bool      `json:"isActive"`
}

func (r UpdateFeaturedPackageRequest) Apply(m *model.FeaturedPackageModel) {
	if r.Title != nil {
		m.FeaturedPackageTitleEn = r.Title.En
		m.FeaturedPackageTitleAr = r.Title.Ar
	}
	if r.Subtitle != nil {
		m.FeaturedPackageSubtitleEn = r.Subtitle.En
		m.FeaturedPackageSubtitleAr = r.Subtitle.Ar
	}
	if r.DestinationsCount != nil {
		m.FeaturedPackageDestinationsCount = *r.DestinationsCount
	}
	if r.Order != nil {
		m.FeaturedPackageOrder = *r.Order
	}
	if r.IsActive != nil {
		m.FeaturedPackageIsActive = *r.IsActive
	}
}

/* ==============================
   RESPONSE — package selalu data live hasil join, bukan snapshot
============================== */

type FeaturedPackageResponse struct {
	FeaturedPackageID string                      `json:"id"`
	Package           *packageDto.PackageResponse `json:"package,omitempty"`
	Title             Localized                   `json:"title"`
	Subtitle          Localized                   `json:"subtitle"`
	DestinationsCount string                      `json:"destinationsCount"`
	Order             int                         `json:"order"`
	IsActive          bool                        `json:"isActive"`
	CreatedAt         string                      `json:"createdAt"`
}

func ToFeaturedPackageResponse(m model.FeaturedPackageModel) FeaturedPackageResponse {
	var pkg *packageDto.PackageResponse
	if m.Package != nil {
		p := packageDto.ToPackageResponse(*m.Package)
		pkg = &p
	}
	return FeaturedPackageResponse{
		FeaturedPackageID: m.FeaturedPackageID.String(),
		Package:           pkg,
		Title:             Localized{En: m.FeaturedPackageTitleEn, Ar: m.FeaturedPackageTitleAr},
		Subtitle:          Localized{En: m.FeaturedPackageSubtitleEn, Ar: m.FeaturedPackageSubtitleAr},
		DestinationsCount: m.FeaturedPackageDestinationsCount,
		Order:             m.FeaturedPackageOrder,
		IsActive:          m.FeaturedPackageIsActive,
		CreatedAt:         m.FeaturedPackageCreatedAt.Format(time.RFC3339),
	}
}

func ToFeaturedPackageResponseList(items []model.FeaturedPackageModel) []FeaturedPackageResponse {
	out := make([]FeaturedPackageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ToFeaturedPackageResponse(m))
	}
	return out
}
