package queries

import (
	"time"

	"github.com/google/uuid"
)

// Bundled catalog served when the database cannot be read. Ids are stable so a session
// started in degraded mode still resolves its selection after the database comes back.
var (
	fallbackCategoryLashes = uuid.MustParse("6b1f5a0e-3c1d-4c55-9a53-1d0f7c9e0a01")
	fallbackCategoryBrows  = uuid.MustParse("6b1f5a0e-3c1d-4c55-9a53-1d0f7c9e0a02")
)

var fallbackCategories = []CategoryView{
	{ID: fallbackCategoryLashes, Name: "Ресницы", SortOrder: 1},
	{ID: fallbackCategoryBrows, Name: "Брови", SortOrder: 2},
}

var fallbackServices = []ServiceView{
	{
		ID:           uuid.MustParse("2d8e4f6a-7b1c-4e2d-8f3a-5c6b7d8e9f01"),
		Name:         "Наращивание ресниц (классика)",
		Description:  "Классическое поресничное наращивание",
		Price:        2500,
		DurationMin:  120,
		CategoryID:   &fallbackCategoryLashes,
		CategoryName: "Ресницы",
		Active:       true,
		SortOrder:    1,
	},
	{
		ID:           uuid.MustParse("2d8e4f6a-7b1c-4e2d-8f3a-5c6b7d8e9f02"),
		Name:         "Ламинирование ресниц",
		Description:  "Ламинирование и окрашивание натуральных ресниц",
		Price:        2000,
		DurationMin:  90,
		CategoryID:   &fallbackCategoryLashes,
		CategoryName: "Ресницы",
		Active:       true,
		SortOrder:    2,
	},
	{
		ID:           uuid.MustParse("2d8e4f6a-7b1c-4e2d-8f3a-5c6b7d8e9f03"),
		Name:         "Коррекция бровей",
		Description:  "Коррекция формы пинцетом или воском",
		Price:        800,
		DurationMin:  30,
		CategoryID:   &fallbackCategoryBrows,
		CategoryName: "Брови",
		Active:       true,
		SortOrder:    3,
	},
	{
		ID:           uuid.MustParse("2d8e4f6a-7b1c-4e2d-8f3a-5c6b7d8e9f04"),
		Name:         "Ламинирование бровей",
		Description:  "Долговременная укладка бровей",
		Price:        1800,
		DurationMin:  60,
		CategoryID:   &fallbackCategoryBrows,
		CategoryName: "Брови",
		Active:       true,
		SortOrder:    4,
	},
}

var fallbackMasters = []PublicMasterView{
	{
		ID:             uuid.MustParse("9a0c1e2f-4b5d-4a6e-8c7f-0d1e2f3a4b01"),
		Name:           "Анна",
		Specialization: "Лэшмейкер",
		Active:         true,
		SortOrder:      1,
	},
	{
		ID:             uuid.MustParse("9a0c1e2f-4b5d-4a6e-8c7f-0d1e2f3a4b02"),
		Name:           "Мария",
		Specialization: "Бровист",
		Active:         true,
		SortOrder:      2,
	},
}

var fallbackReviews = []ReviewView{
	{
		ID:         uuid.MustParse("c4d5e6f7-0a1b-4c2d-9e3f-4a5b6c7d8e01"),
		ClientName: "Екатерина",
		Rating:     5,
		Comment:    "Отличное ламинирование, держится уже месяц!",
		Published:  true,
		CreatedAt:  time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC),
	},
}

var fallbackPromotions = []PromotionView{}

var fallbackGallery = []GalleryView{}
