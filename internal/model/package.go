package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Package is a sellable service bundle shown on the public packages page.
type Package struct {
	ID                   string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name                 string         `json:"name"`
	Price                float64        `json:"price"`
	Category             string         `json:"category"`
	PhysicalItems        datatypes.JSON `json:"physicalItems" gorm:"column:physical_items"`
	DigitalItems         StringList     `json:"digitalItems" gorm:"column:digital_items"`
	ProcessingTime       string         `json:"processingTime" gorm:"column:processing_time"`
	DefaultPrintingCost  *float64       `json:"defaultPrintingCost,omitempty" gorm:"column:default_printing_cost"`
	DefaultTransportCost *float64       `json:"defaultTransportCost,omitempty" gorm:"column:default_transport_cost"`
	Photographers        string         `json:"photographers"`
	Videographers        string         `json:"videographers"`
	CoverImage           string         `json:"coverImage" gorm:"column:cover_image"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// AddOn is an optional extra a booking can attach to a package.
type AddOn struct {
	ID    string  `json:"id" gorm:"type:uuid;primaryKey"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (a *AddOn) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
