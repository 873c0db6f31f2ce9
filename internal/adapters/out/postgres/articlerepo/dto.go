// Package articlerepo persists per-article packaging data.
package articlerepo

import (
	"time"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
)

// ArticleDTO is one row of the article packaging table. BoxWeightKg is the
// measured weight of a full box and wins over UnitWeightKg, which the product
// master supplies.
type ArticleDTO struct {
	Code         string `gorm:"primaryKey;size:32"`
	Name         string
	LengthCm     float64
	WidthCm      float64
	HeightCm     float64
	BoxWeightKg  float64
	UnitWeightKg float64
	UnitsPerBox  int
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming.
func (ArticleDTO) TableName() string {
	return "articles"
}

// toDomain fills gaps with the default box and marks the article estimated
// when it does.
func toDomain(dto ArticleDTO) (cargo.Article, error) {
	estimated := false

	box, err := kernel.NewDimensions(dto.LengthCm, dto.WidthCm, dto.HeightCm)
	if err != nil {
		box = cargo.DefaultArticle(dto.Code).Box()
		estimated = true
	}

	weight := dto.BoxWeightKg
	if weight <= 0 {
		weight = dto.UnitWeightKg
	}
	if weight <= 0 {
		weight = cargo.DefaultBoxWeightKg
		estimated = true
	}

	return cargo.NewArticle(dto.Code, dto.Name, box, weight, dto.UnitsPerBox, estimated)
}

func fromDomain(a cargo.Article, now time.Time) ArticleDTO {
	return ArticleDTO{
		Code:        a.Code(),
		Name:        a.Name(),
		LengthCm:    a.Box().Width(),
		WidthCm:     a.Box().Depth(),
		HeightCm:    a.Box().Height(),
		BoxWeightKg: a.WeightKg(),
		UnitsPerBox: a.UnitsPerBox(),
		UpdatedAt:   now,
	}
}
