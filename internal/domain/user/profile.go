package user

import "strings"

// SkillIDGenerator mints placeholder ids for skill records created client-side.
type SkillIDGenerator interface {
	SkillID(userID string) string
}

// ProfileEdit is the raw input of the profile completion form.
type ProfileEdit struct {
	Phone             string       `json:"phone" validate:"required,in_phone"`
	Experience        NumericInput `json:"experience" validate:"num_gte=0,num_lte=50"`
	HourlyRate        NumericInput `json:"hourlyRate" validate:"num_gte=50,num_lte=5000"`
	ServiceAreas      string       `json:"serviceAreas" validate:"max=500"`
	PreferredLocation string       `json:"preferredLocation" validate:"max=500"`
	Skills            []string     `json:"skills" validate:"dive,required"`
}

// MergeProfile applies an edit on top of the current record. Phone,
// experience and hourly rate always overwrite. Submitted skill ids replace the
// existing skill list.
func MergeProfile(current User, edit ProfileEdit, ids SkillIDGenerator) User {
	merged := current
	merged.Phone = strings.TrimSpace(edit.Phone)
	merged.Experience = edit.Experience.Int()
	merged.HourlyRate = edit.HourlyRate.Float()

	areas := strings.TrimSpace(edit.ServiceAreas)
	preferred := strings.TrimSpace(edit.PreferredLocation)

	switch current.Variant().(type) {
	case Worker:
		merged.ServiceAreas = areas
		merged.PreferredLocation = firstNonBlank(preferred, areas)
	case Customer:
		merged.PreferredLocation = preferred
		merged.ServiceAreas = firstNonBlank(areas, preferred)
	default:
		merged.ServiceAreas = areas
		merged.PreferredLocation = preferred
	}

	if edit.Skills != nil {
		merged.UserSkills = ExpandSkills(current.UserID, edit.Skills, merged.Experience, merged.HourlyRate, ids)
	}
	if merged.UserSkills == nil {
		merged.UserSkills = []UserSkill{}
	}
	return merged
}

// ExpandSkills turns sub-category ids into skill records. Only the first one
// is marked primary.
func ExpandSkills(userID string, subCategoryIDs []string, experience int, rate float64, ids SkillIDGenerator) []UserSkill {
	out := make([]UserSkill, 0, len(subCategoryIDs))
	for i, subID := range subCategoryIDs {
		out = append(out, UserSkill{
			UserSkillID:      ids.SkillID(userID),
			SubCategoryID:    subID,
			ProficiencyLevel: ProficiencyIntermediate,
			ExperienceYears:  experience,
			SkillHourlyRate:  rate,
			IsPrimarySkill:   i == 0,
		})
	}
	return out
}

// IsProfileComplete reports whether the record has everything the
// profile page asks for.
func IsProfileComplete(u User) bool {
	if isBlank(u.Name) || isBlank(u.Email) || isBlank(u.Phone) || isBlank(u.Gender) {
		return false
	}
	switch v := u.Variant().(type) {
	case Worker:
		return !isBlank(v.ServiceAreas) && !isBlank(v.PreferredLocation)
	case Customer:
		return !isBlank(v.PreferredLocation)
	default:
		return false
	}
}

const (
	ActionComplete = "complete"
	ActionEdit     = "edit"
)

func CallToAction(u User) string {
	if IsProfileComplete(u) {
		return ActionEdit
	}
	return ActionComplete
}

// RequiredLocation returns the location field the role must fill in, and
// whether it is present.
func RequiredLocation(role Role, edit ProfileEdit) (string, bool) {
	switch role {
	case RoleWorker:
		return "serviceAreas", !isBlank(edit.ServiceAreas)
	case RoleCustomer:
		return "preferredLocation", !isBlank(edit.PreferredLocation)
	default:
		return "", false
	}
}
