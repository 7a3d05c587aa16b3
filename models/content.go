package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"content-humanizer/humanizer"
)

// Document ist die einheitliche Sicht auf ein Content-Dokument, unabhängig von der Collection.
type Document struct {
	ID              uint              `json:"id"`
	Name            string            `json:"name"`
	Fields          map[string]string `json:"fields"`
	EngineSummaries EngineSummaryList `json:"engine_summaries,omitempty"`
}

// EngineSummaryList wird als JSONB gespeichert.
type EngineSummaryList []humanizer.EngineSummary

// Value implements driver.Valuer.
func (l EngineSummaryList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *EngineSummaryList) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("engine summaries: unsupported type %T", src)
	}
	return json.Unmarshal(b, l)
}

// Brand repräsentiert eine Automarke.
type Brand struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug    string `json:"slug" gorm:"uniqueIndex;not null"`
	Name    string `json:"name" gorm:"not null;index"`
	Status  string `json:"status" gorm:"index;default:'active'"`
	Ranking int    `json:"ranking"`
	Summary string `json:"summary,omitempty" gorm:"type:text"`
}

func (Brand) TableName() string { return "brands" }

func (b Brand) Document() Document {
	return Document{ID: b.ID, Name: b.Name, Fields: map[string]string{"summary": b.Summary}}
}

// CarContent enthält die KI-generierten Textfelder von Modellen und kommenden Autos.
type CarContent struct {
	HeaderSeo          string            `json:"header_seo,omitempty" gorm:"type:text"`
	Summary            string            `json:"summary,omitempty" gorm:"type:text"`
	Description        string            `json:"description,omitempty" gorm:"type:text"`
	ExteriorDesign     string            `json:"exterior_design,omitempty" gorm:"type:text"`
	ComfortConvenience string            `json:"comfort_convenience,omitempty" gorm:"type:text"`
	Pros               string            `json:"pros,omitempty" gorm:"type:text"`
	Cons               string            `json:"cons,omitempty" gorm:"type:text"`
	EngineSummaries    EngineSummaryList `json:"engine_summaries,omitempty" gorm:"type:jsonb"`
}

func (c CarContent) fields() map[string]string {
	return map[string]string{
		"header_seo":          c.HeaderSeo,
		"summary":             c.Summary,
		"description":         c.Description,
		"exterior_design":     c.ExteriorDesign,
		"comfort_convenience": c.ComfortConvenience,
		"pros":                c.Pros,
	}
}

// CarModel ist ein aktuell angebotenes Modell.
type CarModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BrandID    uint   `json:"brand_id" gorm:"index"`
	Slug       string `json:"slug" gorm:"uniqueIndex;not null"`
	Name       string `json:"name" gorm:"not null"`
	Status     string `json:"status" gorm:"index;default:'active'"`
	BodyType   string `json:"body_type,omitempty"`
	LaunchDate string `json:"launch_date,omitempty"`

	CarContent `gorm:"embedded"`
}

func (CarModel) TableName() string { return "car_models" }

func (m CarModel) Document() Document {
	return Document{ID: m.ID, Name: m.Name, Fields: m.fields(), EngineSummaries: m.EngineSummaries}
}

// UpcomingCar ist ein angekündigtes, noch nicht erhältliches Modell.
type UpcomingCar struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BrandID            uint    `json:"brand_id" gorm:"index"`
	Slug               string  `json:"slug" gorm:"uniqueIndex;not null"`
	Name               string  `json:"name" gorm:"not null"`
	Status             string  `json:"status" gorm:"index;default:'active'"`
	ExpectedLaunchDate string  `json:"expected_launch_date,omitempty"`
	ExpectedPriceMin   float64 `json:"expected_price_min,omitempty"`
	ExpectedPriceMax   float64 `json:"expected_price_max,omitempty"`

	CarContent `gorm:"embedded"`
}

func (UpcomingCar) TableName() string { return "upcoming_cars" }

func (u UpcomingCar) Document() Document {
	return Document{ID: u.ID, Name: u.Name, Fields: u.fields(), EngineSummaries: u.EngineSummaries}
}

// Variant ist eine Ausstattungsvariante eines Modells.
type Variant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BrandID uint    `json:"brand_id" gorm:"index"`
	ModelID uint    `json:"model_id" gorm:"index"`
	Slug    string  `json:"slug" gorm:"uniqueIndex;not null"`
	Name    string  `json:"name" gorm:"not null"`
	Price   float64 `json:"price"`
	Status  string  `json:"status" gorm:"index;default:'active'"`

	Description        string `json:"description,omitempty" gorm:"type:text"`
	HeaderSummary      string `json:"header_summary,omitempty" gorm:"type:text"`
	KeyFeatures        string `json:"key_features,omitempty" gorm:"type:text"`
	ExteriorDesign     string `json:"exterior_design,omitempty" gorm:"type:text"`
	ComfortConvenience string `json:"comfort_convenience,omitempty" gorm:"type:text"`

	EngineName    string `json:"engine_name,omitempty"`
	EngineSummary string `json:"engine_summary,omitempty" gorm:"type:text"`
	EnginePower   string `json:"engine_power,omitempty"`
	EngineTorque  string `json:"engine_torque,omitempty"`
}

func (Variant) TableName() string { return "variants" }

func (v Variant) Document() Document {
	return Document{ID: v.ID, Name: v.Name, Fields: map[string]string{
		"description":         v.Description,
		"header_summary":      v.HeaderSummary,
		"key_features":        v.KeyFeatures,
		"exterior_design":     v.ExteriorDesign,
		"comfort_convenience": v.ComfortConvenience,
		"engine_summary":      v.EngineSummary,
	}}
}
