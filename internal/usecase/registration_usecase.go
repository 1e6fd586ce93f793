package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"kaamwala/internal/domain/user"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/session"
)

const formRegister = "register"

type RegisterInput struct {
	Form user.RegistrationForm
	// Skills are sub-category ids; only workers may send them.
	Skills []string
	Image  *marketplace.File
}

type RegisterResult struct {
	User     user.User `json:"user"`
	Warnings []Warning `json:"warnings"`
}

type RegistrationUsecase interface {
	Register(ctx context.Context, sess *session.Session, in RegisterInput) (RegisterResult, error)
}

type Registration struct {
	users    UserAPI
	skills   SkillAPI
	validate Validator
	ids      user.SkillIDGenerator
	logger   *log.Logger
}

func NewRegistrationUsecase(users UserAPI, skills SkillAPI, v Validator, ids user.SkillIDGenerator, logger *log.Logger) *Registration {
	return &Registration{users: users, skills: skills, validate: v, ids: ids, logger: logger}
}

// Register creates the user, then uploads the image and the skills. Only the
// create call can fail the registration; later failures become warnings.
func (u *Registration) Register(ctx context.Context, sess *session.Session, in RegisterInput) (RegisterResult, error) {
	var res RegisterResult
	err := guard(ctx, sess, formRegister, func() error {
		var err error
		res, err = u.register(ctx, sess, in)
		return err
	})
	return res, err
}

func (u *Registration) register(ctx context.Context, sess *session.Session, in RegisterInput) (RegisterResult, error) {
	if role, ok := user.ParseRole(string(in.Form.Role)); ok {
		in.Form.Role = role
	}
	if err := u.validate.Struct(in.Form); err != nil {
		return RegisterResult{}, invalid(err)
	}
	if in.Image != nil {
		if err := checkImage(*in.Image); err != nil {
			return RegisterResult{}, invalid(err)
		}
	}

	payload, err := user.AssembleRegistration(in.Form)
	if err != nil {
		return RegisterResult{}, invalid(err)
	}
	if err := payload.Validate(); err != nil {
		return RegisterResult{}, invalid(err)
	}

	created, err := u.users.CreateUser(ctx, payload)
	if err != nil {
		return RegisterResult{}, err
	}
	if created.UserID == "" && created.Email == "" {
		created = payload.User()
	}
	created = created.Sanitized()
	if created.UserSkills == nil {
		created.UserSkills = []user.UserSkill{}
	}

	res := RegisterResult{User: created, Warnings: []Warning{}}

	if created.UserID == "" {
		res.Warnings = append(res.Warnings, Warning{
			Code:    WarningMissingID,
			Message: "Account created, but the image and skills could not be attached. Please add them from your profile.",
		})
	} else {
		if w, ok := u.uploadImage(ctx, created.UserID, in.Image); !ok {
			res.Warnings = append(res.Warnings, w)
		}
		if payload.Role == user.RoleWorker && len(in.Skills) > 0 {
			skills, w, ok := u.addSkills(ctx, created, payload, in.Skills)
			if !ok {
				res.Warnings = append(res.Warnings, w)
			} else {
				res.User.UserSkills = skills
			}
		}
	}

	if sess != nil {
		if err := sess.PutHandoff(ctx, res.User); err != nil && u.logger != nil {
			u.logger.Printf("[Registration] handoff store failed | user=%s err=%v", res.User.UserID, err)
		}
	}
	if u.logger != nil {
		u.logger.Printf("[Registration] user created | user=%s role=%s warnings=%d", res.User.UserID, res.User.Role, len(res.Warnings))
	}
	return res, nil
}

func (u *Registration) uploadImage(ctx context.Context, userID string, img *marketplace.File) (Warning, bool) {
	if img == nil {
		return Warning{}, true
	}
	if err := u.users.UploadImage(ctx, userID, *img); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Registration] image upload failed | user=%s err=%v", userID, err)
		}
		return Warning{Code: WarningImageUpload, Message: warningMessage("Profile image could not be uploaded", err)}, false
	}
	return Warning{}, true
}

func (u *Registration) addSkills(ctx context.Context, created user.User, p user.RegistrationPayload, subIDs []string) ([]user.UserSkill, Warning, bool) {
	exp, rate := 0, 0.0
	if p.Experience != nil {
		exp = *p.Experience
	}
	if p.HourlyRate != nil {
		rate = *p.HourlyRate
	}
	expanded := user.ExpandSkills(created.UserID, subIDs, exp, rate, u.ids)

	saved, err := u.skills.BulkCreateSkills(ctx, created.UserID, expanded)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Registration] skills failed | user=%s count=%d err=%v", created.UserID, len(expanded), err)
		}
		return nil, Warning{Code: WarningSkills, Message: warningMessage("Skills could not be saved", err)}, false
	}
	if len(saved) == 0 {
		saved = expanded
	}
	return saved, Warning{}, true
}

func warningMessage(prefix string, err error) string {
	var apiErr *marketplace.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", prefix, apiErr.Message)
	}
	if errors.Is(err, marketplace.ErrNetwork) {
		return prefix + ": " + marketplace.MessageNetwork
	}
	return prefix + "."
}

var _ RegistrationUsecase = (*Registration)(nil)
