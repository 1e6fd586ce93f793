package usecase

import (
	"context"
	"strings"

	"kaamwala/internal/domain/user"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/session"
)

type SkillInput struct {
	SubCategoryID    string                `json:"subCategoryId" validate:"required"`
	ProficiencyLevel user.ProficiencyLevel `json:"proficiencyLevel" validate:"omitempty,oneof=BEGINNER INTERMEDIATE EXPERT"`
	ExperienceYears  int                   `json:"experienceYears" validate:"gte=0,lte=50"`
	SkillHourlyRate  float64               `json:"skillHourlyRate" validate:"gte=0,lte=5000"`
	IsPrimarySkill   bool                  `json:"isPrimarySkill"`
}

type UserSkillUsecase interface {
	List(ctx context.Context, sess *session.Session, userID string) ([]user.UserSkill, error)
	Create(ctx context.Context, sess *session.Session, userID string, in SkillInput) (user.UserSkill, error)
	Update(ctx context.Context, sess *session.Session, skillID string, in SkillInput) (user.UserSkill, error)
	Delete(ctx context.Context, sess *session.Session, skillID string) error
	BulkCreate(ctx context.Context, sess *session.Session, userID string, in []SkillInput) ([]user.UserSkill, error)
}

type UserSkill struct {
	api      SkillAPI
	validate Validator
	ids      user.SkillIDGenerator
}

func NewUserSkillUsecase(api SkillAPI, v Validator, ids user.SkillIDGenerator) *UserSkill {
	return &UserSkill{api: api, validate: v, ids: ids}
}

func (u *UserSkill) List(ctx context.Context, sess *session.Session, userID string) ([]user.UserSkill, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, invalidField("userId", "required", "")
	}
	out, err := u.api.UserSkills(withSession(ctx, sess), userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []user.UserSkill{}
	}
	return out, nil
}

func (u *UserSkill) Create(ctx context.Context, sess *session.Session, userID string, in SkillInput) (user.UserSkill, error) {
	if strings.TrimSpace(userID) == "" {
		return user.UserSkill{}, invalidField("userId", "required", "")
	}
	if err := u.validate.Struct(in); err != nil {
		return user.UserSkill{}, invalid(err)
	}
	rec := marketplace.SkillRecord{UserID: userID, UserSkill: u.toSkill(userID, "", in)}
	return u.api.CreateSkill(withSession(ctx, sess), rec)
}

func (u *UserSkill) Update(ctx context.Context, sess *session.Session, skillID string, in SkillInput) (user.UserSkill, error) {
	if strings.TrimSpace(skillID) == "" {
		return user.UserSkill{}, invalidField("userSkillId", "required", "")
	}
	if err := u.validate.Struct(in); err != nil {
		return user.UserSkill{}, invalid(err)
	}
	return u.api.UpdateSkill(withSession(ctx, sess), skillID, u.toSkill("", skillID, in))
}

func (u *UserSkill) Delete(ctx context.Context, sess *session.Session, skillID string) error {
	if strings.TrimSpace(skillID) == "" {
		return invalidField("userSkillId", "required", "")
	}
	return u.api.DeleteSkill(withSession(ctx, sess), skillID)
}

// BulkCreate marks the first skill primary when none is.
func (u *UserSkill) BulkCreate(ctx context.Context, sess *session.Session, userID string, in []SkillInput) ([]user.UserSkill, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, invalidField("userId", "required", "")
	}
	if len(in) == 0 {
		return nil, invalidField("skills", "required", "")
	}

	skills := make([]user.UserSkill, 0, len(in))
	anyPrimary := false
	for _, s := range in {
		if err := u.validate.Struct(s); err != nil {
			return nil, invalid(err)
		}
		anyPrimary = anyPrimary || s.IsPrimarySkill
		skills = append(skills, u.toSkill(userID, "", s))
	}
	if !anyPrimary {
		skills[0].IsPrimarySkill = true
	}

	out, err := u.api.BulkCreateSkills(withSession(ctx, sess), userID, skills)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		out = skills
	}
	return out, nil
}

func (u *UserSkill) toSkill(userID, skillID string, in SkillInput) user.UserSkill {
	level := in.ProficiencyLevel
	if level == "" {
		level = user.ProficiencyIntermediate
	}
	if skillID == "" {
		skillID = u.ids.SkillID(userID)
	}
	return user.UserSkill{
		UserSkillID:      skillID,
		SubCategoryID:    strings.TrimSpace(in.SubCategoryID),
		ProficiencyLevel: level,
		ExperienceYears:  in.ExperienceYears,
		SkillHourlyRate:  in.SkillHourlyRate,
		IsPrimarySkill:   in.IsPrimarySkill,
	}
}

var _ UserSkillUsecase = (*UserSkill)(nil)
