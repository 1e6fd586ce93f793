package worker

import "strings"

const DefaultAvatar = "/default-avatar.png"

// Row is a worker as returned by the listing and search endpoints. Different
// endpoints spell some fields differently; Normalize reconciles them.
type Row struct {
	UserID          string   `json:"userId"`
	Name            string   `json:"name"`
	Experience      *float64 `json:"experience,omitempty"`
	ExperienceYears *float64 `json:"experienceYears,omitempty"`
	HourlyRate      *float64 `json:"hourlyRate,omitempty"`
	ServiceAreas    string   `json:"serviceAreas,omitempty"`
	ServiceArea     string   `json:"serviceArea,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	PhoneNumber     string   `json:"phoneNumber,omitempty"`
	ImageName       string   `json:"imageName,omitempty"`
	UserSkills      []Skill  `json:"userSkills,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	TotalJobs       *int     `json:"totalJobs,omitempty"`
}

type Skill struct {
	SubCategoryID   string `json:"subCategoryId,omitempty"`
	SubCategoryName string `json:"subCategoryName"`
}

// Card is the display shape of a worker.
type Card struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Experience   int      `json:"experience"`
	HourlyRate   float64  `json:"hourlyRate"`
	ServiceAreas string   `json:"serviceAreas"`
	Phone        string   `json:"phone"`
	ImageURL     string   `json:"imageUrl"`
	Skills       []string `json:"skills"`
	Rating       *float64 `json:"rating,omitempty"`
	TotalJobs    *int     `json:"totalJobs,omitempty"`
}

// Normalize converts a row into a card; for each pair of alternative
// spellings the first non-empty one wins. imageBase is prepended to the
// image path and may be empty.
func Normalize(r Row, imageBase string) Card {
	c := Card{
		ID:           r.UserID,
		Name:         r.Name,
		Experience:   int(firstPositive(r.Experience, r.ExperienceYears)),
		HourlyRate:   firstPositive(r.HourlyRate),
		ServiceAreas: firstNonEmpty(r.ServiceAreas, r.ServiceArea),
		Phone:        firstNonEmpty(r.Phone, r.PhoneNumber),
		ImageURL:     DefaultAvatar,
		Skills:       make([]string, 0, len(r.UserSkills)),
		Rating:       r.Rating,
		TotalJobs:    r.TotalJobs,
	}
	if strings.TrimSpace(r.ImageName) != "" && r.UserID != "" {
		c.ImageURL = ImagePath(imageBase, r.UserID)
	}
	for _, s := range r.UserSkills {
		if name := strings.TrimSpace(s.SubCategoryName); name != "" {
			c.Skills = append(c.Skills, name)
		}
	}
	return c
}

func NormalizeAll(rows []Row, imageBase string) []Card {
	out := make([]Card, 0, len(rows))
	for _, r := range rows {
		out = append(out, Normalize(r, imageBase))
	}
	return out
}

// ImagePath is where the backend serves a user's profile image.
func ImagePath(base, userID string) string {
	return strings.TrimRight(base, "/") + "/users/image/" + userID
}

func firstPositive(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil && *v > 0 {
			return *v
		}
	}
	return 0
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
