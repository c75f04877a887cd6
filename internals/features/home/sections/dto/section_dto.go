package dto

import (
	"mime/multipart"
	"time"

	"tenderoutes_backend/internals/features/home/sections/model"
)

type Localized struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

/* ==============================
   CREATE (POST /sections)
============================== */

type CreateSectionRequest struct {
	TitleEn       string `json:"titleEn" validate:"required,max=255"`
	TitleAr       string `json:"titleAr" validate:"required,max=255"`
	DescriptionEn string `json:"descriptionEn" validate:"required"`
	DescriptionAr string `json:"descriptionAr" validate:"required"`
}

func CreateFromForm(form *multipart.Form) CreateSectionRequest {
	get := func(key string) string {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			return vals[0]
		}
		return ""
	}
	return CreateSectionRequest{
		TitleEn:       get("titleEn"),
		TitleAr:       get("titleAr"),
		DescriptionEn: get("descriptionEn"),
		DescriptionAr: get("descriptionAr"),
	}
}

/* ==============================
   UPDATE (PUT /sections/:id) — partial, pointer = hadir
============================== */

type UpdateSectionRequest struct {
	TitleEn       *string `json:"titleEn" validate:"omitempty,max=255"`
	TitleAr       *string `json:"titleAr" validate:"omitempty,max=255"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionAr *string `json:"descriptionAr"`
}

func UpdateFromForm(form *multipart.Form) UpdateSectionRequest {
	var req UpdateSectionRequest
	set := func(key string, dst **string) {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			v := vals[0]
			*dst = &v
		}
	}
	set("titleEn", &req.TitleEn)
	set("titleAr", &req.TitleAr)
	set("descriptionEn", &req.DescriptionEn)
	set("descriptionAr", &req.DescriptionAr)
	return req
}

// Apply menerapkan partial update: hanya leaf yang hadir yang ditimpa.
func (r UpdateSectionRequest) Apply(m *model.SectionModel, now time.Time) {
	if r.TitleEn != nil {
		m.SectionTitleEn = *r.TitleEn
	}
	if r.TitleAr != nil {
		m.SectionTitleAr = *r.TitleAr
	}
	if r.DescriptionEn != nil {
		m.SectionDescriptionEn = *r.DescriptionEn
	}
	if r.DescriptionAr != nil {
		m.SectionDescriptionAr = *r.DescriptionAr
	}
	m.SectionUpdatedAt = now
}

/* ==============================
   RESPONSE
============================== */

type SectionResponse struct {
	SectionID   string    `json:"id"`
	Title       Localized `json:"title"`
	Description Localized `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

func ToSectionResponse(m model.SectionModel) SectionResponse {
	return SectionResponse{
		SectionID:   m.SectionID.String(),
		Title:       Localized{En: m.SectionTitleEn, Ar: m.SectionTitleAr},
		Description: Localized{En: m.SectionDescriptionEn, Ar: m.SectionDescriptionAr},
		ImageURL:    m.SectionImageURL,
		CreatedAt:   m.SectionCreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.SectionUpdatedAt.Format(time.RFC3339),
	}
}

func ToSectionResponseList(items []model.SectionModel) []SectionResponse {
	out := make([]SectionResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ToSectionResponse(m))
	}
	return out
}
