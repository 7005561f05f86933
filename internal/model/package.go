package model

import "time"

// Package is a pricing tier. Price is a display string ("25,000", "Contact us").
type Package struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Features    []string  `json:"features"`
	Description string    `json:"description"`
	CTALink     string    `json:"ctaLink"`
	CreatedAt   time.Time `json:"-"`
}

type UpdatePackageRequest struct {
	Name        *string   `json:"name,omitempty"` // Pointers to allow partial updates
	Price       *string   `json:"price,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	Description *string   `json:"description,omitempty"`
	CTALink     *string   `json:"ctaLink,omitempty"`
}

// DefaultPackages is the catalog inserted by the one-shot package seed
func DefaultPackages() []Package {
	return []Package{
		{
			Name:     "الباقة الأساسية",
			Price:    "25,000",
			Features: []string{"تصميم موقع صفحة واحدة", "تصميم متجاوب", "لوحة تحكم بسيطة", "دعم فني لمدة شهر"},
			CTALink:  "https://wa.me/213549936340?text=أنا مهتم بالباقة الأساسية",
		},
		{
			Name:     "باقة الأعمال",
			Price:    "45,000",
			Features: []string{"تصميم موقع متعدد الصفحات", "تهيئة محركات البحث (SEO)", "ربط مع وسائل التواصل", "دعم فني لمدة 3 أشهر"},
			CTALink:  "https://wa.me/213549936340?text=أنا مهتم بباقة الأعمال",
		},
		{
			Name:     "باقة الشركات",
			Price:    "اتصل بنا",
			Features: []string{"حلول برمجية مخصصة", "متجر إلكتروني متكامل", "تطبيقات موبايل", "دعم فني و صيانة سنوية"},
			CTALink:  "https://wa.me/213549936340?text=أنا مهتم بباقة الشركات",
		},
	}
}
