package usecase

import (
	"context"
	"log"
	"strings"

	"kaamwala/internal/domain/user"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/session"
)

const formProfile = "profile"

type ProfileView struct {
	User            user.User `json:"user"`
	PrimaryLocation string    `json:"primaryLocation"`
	Complete        bool      `json:"complete"`
	Action          string    `json:"action"`
	FromHandoff     bool      `json:"fromHandoff"`
}

type ProfileUsecase interface {
	View(ctx context.Context, sess *session.Session, id string) (ProfileView, error)
	Complete(ctx context.Context, sess *session.Session, id string, edit user.ProfileEdit) (ProfileView, error)
	UploadImage(ctx context.Context, sess *session.Session, id string, img marketplace.File) error
}

type Profile struct {
	users    UserAPI
	validate Validator
	ids      user.SkillIDGenerator
	logger   *log.Logger
}

func NewProfileUsecase(users UserAPI, v Validator, ids user.SkillIDGenerator, logger *log.Logger) *Profile {
	return &Profile{users: users, validate: v, ids: ids, logger: logger}
}

// View prefers the record handed off by a just-finished registration. The
// handoff is consumed even when it belongs to another id.
func (u *Profile) View(ctx context.Context, sess *session.Session, id string) (ProfileView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ProfileView{}, invalidField("id", "required", "")
	}

	if sess != nil {
		h, ok, err := sess.TakeHandoff(ctx)
		if err != nil && u.logger != nil {
			u.logger.Printf("[Profile] handoff read failed | err=%v", err)
		}
		if ok && h.UserID == id {
			return newProfileView(h, true), nil
		}
	}

	current, err := u.users.User(withSession(ctx, sess), id)
	if err != nil {
		return ProfileView{}, err
	}
	return newProfileView(current, false), nil
}

func (u *Profile) Complete(ctx context.Context, sess *session.Session, id string, edit user.ProfileEdit) (ProfileView, error) {
	var view ProfileView
	err := guard(ctx, sess, formProfile, func() error {
		var err error
		view, err = u.complete(ctx, sess, id, edit)
		return err
	})
	return view, err
}

func (u *Profile) complete(ctx context.Context, sess *session.Session, id string, edit user.ProfileEdit) (ProfileView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ProfileView{}, invalidField("id", "required", "")
	}
	if err := u.validate.Struct(edit); err != nil {
		return ProfileView{}, invalid(err)
	}

	ctx = withSession(ctx, sess)
	current, err := u.users.User(ctx, id)
	if err != nil {
		return ProfileView{}, err
	}
	if field, ok := user.RequiredLocation(current.Role, edit); !ok {
		if field == "" {
			return ProfileView{}, invalid(user.ErrUnknownRole)
		}
		return ProfileView{}, invalidField(field, "required", "")
	}

	merged := user.MergeProfile(current, edit, u.ids)
	updated, err := u.users.UpdateUser(ctx, id, merged)
	if err != nil {
		return ProfileView{}, err
	}
	updated = updated.Sanitized()

	if sess != nil {
		if signedIn, ok, _ := sess.User(ctx); ok && signedIn.UserID == id {
			if err := sess.SetUser(ctx, updated); err != nil && u.logger != nil {
				u.logger.Printf("[Profile] session user refresh failed | user=%s err=%v", id, err)
			}
		}
	}
	return newProfileView(updated, false), nil
}

func (u *Profile) UploadImage(ctx context.Context, sess *session.Session, id string, img marketplace.File) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalidField("id", "required", "")
	}
	if err := checkImage(img); err != nil {
		return invalid(err)
	}
	return u.users.UploadImage(withSession(ctx, sess), id, img)
}

func newProfileView(u user.User, fromHandoff bool) ProfileView {
	u = u.Sanitized()
	return ProfileView{
		User:            u,
		PrimaryLocation: u.PrimaryLocation(),
		Complete:        user.IsProfileComplete(u),
		Action:          user.CallToAction(u),
		FromHandoff:     fromHandoff,
	}
}

var _ ProfileUsecase = (*Profile)(nil)
