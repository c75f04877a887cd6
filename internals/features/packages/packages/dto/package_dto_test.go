package dto

import (
	"mime/multipart"
	"testing"
)

func TestPayloadFromForm(t *testing.T) {
	t.Run("field hadir ter-koersi", func(t *testing.T) {
		form := &multipart.Form{Value: map[string][]string{
			"titleEn":    {"Riyadh City Break"},
			"nights":     {"2"},
			"rating":     {"4.5"},
			"isFeatured": {"true"},
			"itinerary":  {`[]`},
		}}

		p, fieldErrs := PayloadFromForm(form)
		if len(fieldErrs) != 0 {
			t.Fatalf("unexpected fieldErrs: %v", fieldErrs)
		}
		if p.TitleEn == nil || *p.TitleEn != "Riyadh City Break" {
			t.Errorf("titleEn = %v", p.TitleEn)
		}
		if p.Nights == nil || *p.Nights != 2 {
			t.Errorf("nights = %v", p.Nights)
		}
		if p.Rating == nil || *p.Rating != 4.5 {
			t.Errorf("rating = %v", p.Rating)
		}
		if p.IsFeatured == nil || !*p.IsFeatured {
			t.Errorf("isFeatured = %v", p.IsFeatured)
		}
		if string(p.Itinerary) != `[]` {
			t.Errorf("itinerary = %s", p.Itinerary)
		}
	})

	t.Run("field absen tetap nil", func(t *testing.T) {
		p, fieldErrs := PayloadFromForm(&multipart.Form{Value: map[string][]string{}})
		if len(fieldErrs) != 0 {
			t.Fatalf("unexpected fieldErrs: %v", fieldErrs)
		}
		if p.TitleEn != nil || p.Nights != nil || p.IsFeatured != nil || p.Itinerary != nil {
			t.Errorf("payload harus kosong: %+v", p)
		}
	})

	t.Run("koersi gagal dikumpulkan per field", func(t *testing.T) {
		form := &multipart.Form{Value: map[string][]string{
			"nights": {"dua"},
			"price":  {"mahal"},
		}}
		p, fieldErrs := PayloadFromForm(form)
		if len(fieldErrs["nights"]) == 0 {
			t.Error("nights invalid harus dilaporkan")
		}
		if len(fieldErrs["price"]) == 0 {
			t.Error("price invalid harus dilaporkan")
		}
		if p.Nights != nil || p.Price != nil {
			t.Error("field gagal koersi tidak boleh terisi")
		}
	})

	t.Run("string kosong dianggap tidak hadir untuk angka", func(t *testing.T) {
		form := &multipart.Form{Value: map[string][]string{
			"nights": {""},
		}}
		p, fieldErrs := PayloadFromForm(form)
		if len(fieldErrs) != 0 {
			t.Fatalf("unexpected fieldErrs: %v", fieldErrs)
		}
		if p.Nights != nil {
			t.Errorf("nights = %v, want nil", p.Nights)
		}
	})
}
