package category

// Category is read-only reference data owned by the marketplace backend.
type Category struct {
	CategoryID    string        `json:"categoryId"`
	CategoryName  string        `json:"categoryName"`
	Description   string        `json:"description,omitempty"`
	IconName      string        `json:"iconName,omitempty"`
	IsActive      bool          `json:"isActive"`
	SubCategories []SubCategory `json:"subCategories"`
}

type SubCategory struct {
	SubCategoryID   string `json:"subCategoryId"`
	SubCategoryName string `json:"subCategoryName"`
	Description     string `json:"description,omitempty"`
	CategoryID      string `json:"categoryId,omitempty"`
	IsActive        bool   `json:"isActive"`
}

// SubCategoryNames indexes sub-category names by id across all categories.
func SubCategoryNames(cats []Category) map[string]string {
	out := make(map[string]string)
	for _, c := range cats {
		for _, s := range c.SubCategories {
			if s.SubCategoryID == "" {
				continue
			}
			out[s.SubCategoryID] = s.SubCategoryName
		}
	}
	return out
}
