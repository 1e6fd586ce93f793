package user

import "strings"

// RegistrationForm holds raw registration input as typed by the user.
// Numeric fields stay raw text so that the assembler decides how to coerce them.
type RegistrationForm struct {
	Name              string       `json:"name" form:"name" validate:"required,max=100"`
	Email             string       `json:"email" form:"email" validate:"required,email"`
	Password          string       `json:"password" form:"password" validate:"required,min=6"`
	Gender            string       `json:"gender" form:"gender" validate:"required,oneof=Male Female Other"`
	About             string       `json:"about" form:"about" validate:"max=1000"`
	Phone             string       `json:"phone" form:"phone" validate:"required,in_phone"`
	Role              Role         `json:"role" form:"role" validate:"required,oneof=worker customer"`
	Experience        NumericInput `json:"experience" form:"experience" validate:"num_gte=0,num_lte=50"`
	HourlyRate        NumericInput `json:"hourlyRate" form:"hourlyRate" validate:"num_gte=0,num_lte=5000"`
	ServiceAreas      string       `json:"serviceAreas" form:"serviceAreas" validate:"required_if=Role worker,max=500"`
	PreferredLocation string       `json:"preferredLocation" form:"preferredLocation" validate:"required_if=Role customer,max=500"`
}

// RegistrationPayload is the body sent to the user-create endpoint. Worker-only
// fields are pointers so they are left out of customer payloads entirely.
type RegistrationPayload struct {
	Name              string       `json:"name"`
	Email             string       `json:"email"`
	Password          string       `json:"password"`
	Gender            string       `json:"gender"`
	About             string       `json:"about"`
	Phone             string       `json:"phone"`
	Role              Role         `json:"role"`
	Experience        *int         `json:"experience,omitempty"`
	HourlyRate        *float64     `json:"hourlyRate,omitempty"`
	ServiceAreas      *string      `json:"serviceAreas,omitempty"`
	PreferredLocation string       `json:"preferredLocation"`
	UserSkills        *[]UserSkill `json:"userSkills,omitempty"`
}

// AssembleRegistration maps a form into the role-specific create payload.
// Skills are never part of it: they go through a separate bulk call once the
// backend has assigned a user id.
func AssembleRegistration(f RegistrationForm) (RegistrationPayload, error) {
	p := RegistrationPayload{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		Gender:   strings.TrimSpace(f.Gender),
		About:    strings.TrimSpace(f.About),
		Phone:    strings.TrimSpace(f.Phone),
		Role:     f.Role,
	}

	switch f.Role {
	case RoleWorker:
		exp := f.Experience.Int()
		rate := f.HourlyRate.Float()
		areas := strings.TrimSpace(f.ServiceAreas)
		skills := []UserSkill{}
		p.Experience = &exp
		p.HourlyRate = &rate
		p.ServiceAreas = &areas
		p.PreferredLocation = firstNonBlank(strings.TrimSpace(f.PreferredLocation), areas)
		p.UserSkills = &skills
	case RoleCustomer:
		p.PreferredLocation = strings.TrimSpace(f.PreferredLocation)
	default:
		return RegistrationPayload{}, ErrUnknownRole
	}

	return p, nil
}

// User converts the payload into the user record it describes, before the
// backend has assigned an id.
func (p RegistrationPayload) User() User {
	u := User{
		Name:              p.Name,
		Email:             p.Email,
		Gender:            p.Gender,
		About:             p.About,
		Phone:             p.Phone,
		Role:              p.Role,
		PreferredLocation: p.PreferredLocation,
		UserSkills:        []UserSkill{},
	}
	if p.Experience != nil {
		u.Experience = *p.Experience
	}
	if p.HourlyRate != nil {
		u.HourlyRate = *p.HourlyRate
	}
	if p.ServiceAreas != nil {
		u.ServiceAreas = *p.ServiceAreas
	}
	return u
}

// Validate checks the role-specific location rules on the assembled payload.
func (p RegistrationPayload) Validate() error {
	switch v := p.User().Variant().(type) {
	case Worker:
		if isBlank(v.ServiceAreas) || isBlank(v.PreferredLocation) {
			return ErrMissingLocation
		}
	case Customer:
		if isBlank(v.PreferredLocation) {
			return ErrMissingLocation
		}
	default:
		return ErrUnknownRole
	}
	return nil
}
