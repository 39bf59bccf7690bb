package repository

import "digisure/internal/domain"

// SeedCatalog returns the fixed baseline dataset: two courses, one
// download and one academic resource. It seeds an empty products
// table at startup and doubles as the fallback catalog whenever the
// primary store is absent or failing, so cold-start and degraded-mode
// responses are identical in content.
//
// A fresh slice is returned on every call; callers may mutate their
// copy freely.
func SeedCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:            "c1",
			Type:          domain.TypeCourse,
			Title:         "Full Stack Web Development",
			Description:   "Master the MERN stack and build real-world applications.",
			Price:         3499,
			OriginalPrice: 12999,
			Thumbnail:     "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=800&q=80",
			Rating:        4.8,
			ReviewsCount:  1240,
			Author:        "CodeWithRahul",
			Tags:          []string{"Web Dev", "React", "NodeJS"},
			Duration:      "42 hours",
			Lectures:      320,
			Level:         domain.LevelIntermediate,
		},
		{
			ID:            "c2",
			Type:          domain.TypeCourse,
			Title:         "Digital Marketing Mastery",
			Description:   "Learn SEO, Social Media, and Google Ads.",
			Price:         1999,
			OriginalPrice: 4999,
			Thumbnail:     "https://images.unsplash.com/photo-1533750516457-a7f992034fec?w=800&q=80",
			Rating:        4.6,
			ReviewsCount:  850,
			Author:        "Priya Digital",
			Tags:          []string{"Marketing", "SEO"},
			Duration:      "18 hours",
			Lectures:      95,
			Level:         domain.LevelBeginner,
		},
		{
			ID:            "d1",
			Type:          domain.TypeDownload,
			Title:         "GST Invoice Template",
			Description:   "Professional, GST-compliant invoice templates.",
			Price:         499,
			OriginalPrice: 999,
			Thumbnail:     "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?w=800&q=80",
			Rating:        4.7,
			ReviewsCount:  320,
			Author:        "BizTools",
			Tags:          []string{"Business", "Templates"},
			FileFormat:    "XLSX",
			FileSize:      "2.4 MB",
			Version:       "2.1",
		},
		{
			ID:            "a1",
			Type:          domain.TypeAcademic,
			Title:         "Class 12 Physics Notes",
			Description:   "Last 10 years solved papers and important questions.",
			Price:         199,
			OriginalPrice: 499,
			Thumbnail:     "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=800&q=80",
			Rating:        4.8,
			ReviewsCount:  450,
			Author:        "TopperNotes",
			Tags:          []string{"CBSE", "Physics"},
			Grade:         "Class 12",
			Subject:       "Physics",
			Format:        domain.FormatPDF,
		},
	}
}
