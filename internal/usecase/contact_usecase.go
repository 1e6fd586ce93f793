package usecase

import (
	"context"
	"log"

	"kaamwala/internal/domain/contact"
	"kaamwala/internal/session"
)

const formContact = "contact"

type ContactUsecase interface {
	Submit(ctx context.Context, sess *session.Session, m contact.Message) (string, error)
	Subjects() []contact.Subject
	Messages(ctx context.Context, sess *session.Session) ([]contact.Message, error)
}

type Contact struct {
	api      ContactAPI
	validate Validator
	logger   *log.Logger
}

func NewContactUsecase(api ContactAPI, v Validator, logger *log.Logger) *Contact {
	return &Contact{api: api, validate: v, logger: logger}
}

// Submit returns the backend's confirmation message.
func (u *Contact) Submit(ctx context.Context, sess *session.Session, m contact.Message) (string, error) {
	m = m.Trimmed()
	if err := u.validate.Struct(m); err != nil {
		return "", invalid(err)
	}
	if !contact.IsSubject(m.Subject) {
		return "", invalidField("subject", "oneof", "")
	}

	var msg string
	err := guard(ctx, sess, formContact, func() error {
		var err error
		msg, err = u.api.SubmitContact(ctx, m)
		return err
	})
	if err != nil {
		return "", err
	}
	if u.logger != nil {
		u.logger.Printf("[Contact] message submitted | subject=%s", m.Subject)
	}
	return msg, nil
}

func (u *Contact) Subjects() []contact.Subject {
	out := make([]contact.Subject, len(contact.Subjects))
	copy(out, contact.Subjects)
	return out
}

func (u *Contact) Messages(ctx context.Context, sess *session.Session) ([]contact.Message, error) {
	out, err := u.api.ContactMessages(withSession(ctx, sess))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []contact.Message{}
	}
	return out, nil
}

var _ ContactUsecase = (*Contact)(nil)
