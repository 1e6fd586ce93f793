package user

import "strings"

type Role string

const (
	RoleWorker   Role = "worker"
	RoleCustomer Role = "customer"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleWorker:
		return RoleWorker, true
	case RoleCustomer:
		return RoleCustomer, true
	default:
		return "", false
	}
}

type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "BEGINNER"
	ProficiencyIntermediate ProficiencyLevel = "INTERMEDIATE"
	ProficiencyExpert       ProficiencyLevel = "EXPERT"
)

// User mirrors the marketplace backend's user record. Role never changes
// after creation.
type User struct {
	UserID            string      `json:"userId,omitempty"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Password          string      `json:"password,omitempty"`
	Gender            string      `json:"gender"`
	About             string      `json:"about"`
	Phone             string      `json:"phone"`
	Role              Role        `json:"role"`
	Experience        int         `json:"experience"`
	HourlyRate        float64     `json:"hourlyRate"`
	ServiceAreas      string      `json:"serviceAreas,omitempty"`
	PreferredLocation string      `json:"preferredLocation,omitempty"`
	ImageName         string      `json:"imageName,omitempty"`
	UserSkills        []UserSkill `json:"userSkills"`
}

type UserSkill struct {
	UserSkillID      string           `json:"userSkillId"`
	SubCategoryID    string           `json:"subCategoryId"`
	ProficiencyLevel ProficiencyLevel `json:"proficiencyLevel"`
	ExperienceYears  int              `json:"experienceYears"`
	SkillHourlyRate  float64          `json:"skillHourlyRate"`
	IsPrimarySkill   bool             `json:"isPrimarySkill"`
}

// Variant is the role-specific part of a user. It is implemented only by
// Worker and Customer.
type Variant interface {
	role() Role
}

type Worker struct {
	ServiceAreas      string
	PreferredLocation string
	Experience        int
	HourlyRate        float64
}

type Customer struct {
	PreferredLocation string
}

func (Worker) role() Role   { return RoleWorker }
func (Customer) role() Role { return RoleCustomer }

// Variant returns nil when the role is unknown.
func (u User) Variant() Variant {
	switch u.Role {
	case RoleWorker:
		return Worker{
			ServiceAreas:      u.ServiceAreas,
			PreferredLocation: u.PreferredLocation,
			Experience:        u.Experience,
			HourlyRate:        u.HourlyRate,
		}
	case RoleCustomer:
		return Customer{PreferredLocation: u.PreferredLocation}
	default:
		return nil
	}
}

// PrimaryLocation is the location shown for the user: service areas for a
// worker, preferred location for a customer, each falling back to the other.
func (u User) PrimaryLocation() string {
	switch v := u.Variant().(type) {
	case Worker:
		return firstNonBlank(v.ServiceAreas, v.PreferredLocation)
	case Customer:
		return firstNonBlank(v.PreferredLocation, u.ServiceAreas)
	default:
		return firstNonBlank(u.PreferredLocation, u.ServiceAreas)
	}
}

func (u User) Sanitized() User {
	u.Password = ""
	return u
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if !isBlank(v) {
			return v
		}
	}
	return ""
}
