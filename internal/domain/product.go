package domain

import (
	"errors"
	"fmt"
)

// ProductType discriminates the product variants in the catalog.
type ProductType string

const (
	TypeCourse   ProductType = "course"
	TypeDownload ProductType = "download"
	TypeAcademic ProductType = "academic"
)

// Course difficulty levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Academic resource formats
const (
	FormatPDF  = "PDF"
	FormatDOCX = "DOCX"
	FormatPPT  = "PPT"
)

var (
	ErrUnknownProductType = errors.New("unknown product type")
	ErrInvalidPrice       = errors.New("price must be a non-negative whole amount")
	ErrInvalidRating      = errors.New("rating must be between 0 and 5")
)

// Product is a tagged-variant catalog entry. The Type discriminator
// decides which of the variant field groups below is meaningful; a
// valid product never mixes fields across variants. All construction
// paths (row mapping, seed data, order payloads) must go through
// Validate before the product is handed to any consumer.
type Product struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Price         int         `json:"price"`
	OriginalPrice int         `json:"originalPrice,omitempty"`
	Thumbnail     string      `json:"thumbnail"`
	Rating        float64     `json:"rating"`
	ReviewsCount  int         `json:"reviewsCount"`
	Author        string      `json:"author"`
	Type          ProductType `json:"type"`
	Tags          []string    `json:"tags"`

	// Course fields
	Duration string `json:"duration,omitempty"`
	Lectures int    `json:"lectures,omitempty"`
	Level    string `json:"level,omitempty"`

	// Digital download fields
	FileFormat string `json:"fileFormat,omitempty"`
	FileSize   string `json:"fileSize,omitempty"`
	Version    string `json:"version,omitempty"`

	// Academic resource fields
	Grade   string `json:"grade,omitempty"`
	Subject string `json:"subject,omitempty"`
	Format  string `json:"format,omitempty"`
}

// Validate checks the shared fields and enforces that the variant
// fields match the discriminator.
func (p *Product) Validate() error {
	if p.ID == "" {
		return errors.New("product id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("product %s: title is required", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s: %w", p.ID, ErrInvalidPrice)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %s: %w", p.ID, ErrInvalidRating)
	}
	if p.ReviewsCount < 0 {
		return fmt.Errorf("product %s: reviews count must not be negative", p.ID)
	}

	switch p.Type {
	case TypeCourse:
		if p.Duration == "" {
			return fmt.Errorf("product %s: course requires a duration", p.ID)
		}
		if p.Lectures <= 0 {
			return fmt.Errorf("product %s: course requires a positive lecture count", p.ID)
		}
		if p.Level != LevelBeginner && p.Level != LevelIntermediate && p.Level != LevelAdvanced {
			return fmt.Errorf("product %s: invalid course level %q", p.ID, p.Level)
		}
		if p.hasDownloadFields() || p.hasAcademicFields() {
			return fmt.Errorf("product %s: course carries fields of another variant", p.ID)
		}
	case TypeDownload:
		if p.FileFormat == "" || p.FileSize == "" || p.Version == "" {
			return fmt.Errorf("product %s: download requires file format, file size and version", p.ID)
		}
		if p.hasCourseFields() || p.hasAcademicFields() {
			return fmt.Errorf("product %s: download carries fields of another variant", p.ID)
		}
	case TypeAcademic:
		if p.Grade == "" || p.Subject == "" {
			return fmt.Errorf("product %s: academic resource requires grade and subject", p.ID)
		}
		if p.Format != FormatPDF && p.Format != FormatDOCX && p.Format != FormatPPT {
			return fmt.Errorf("product %s: invalid academic format %q", p.ID, p.Format)
		}
		if p.hasCourseFields() || p.hasDownloadFields() {
			return fmt.Errorf("product %s: academic resource carries fields of another variant", p.ID)
		}
	default:
		return fmt.Errorf("product %s: %w: %q", p.ID, ErrUnknownProductType, p.Type)
	}

	return nil
}

func (p *Product) hasCourseFields() bool {
	return p.Duration != "" || p.Lectures != 0 || p.Level != ""
}

func (p *Product) hasDownloadFields() bool {
	return p.FileFormat != "" || p.FileSize != "" || p.Version != ""
}

func (p *Product) hasAcademicFields() bool {
	return p.Grade != "" || p.Subject != "" || p.Format != ""
}

// Clone returns a deep copy, including the tags slice, so frozen
// snapshots cannot alias the live catalog entry.
func (p Product) Clone() Product {
	clone := p
	if p.Tags != nil {
		clone.Tags = make([]string, len(p.Tags))
		copy(clone.Tags, p.Tags)
	}
	return clone
}
