package marketplace

import (
	"encoding/json"
	"strings"

	"kaamwala/internal/domain/user"
)

// File is an upload held in memory.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SkillRecord is a user skill together with its owner, as the create
// endpoint expects it.
type SkillRecord struct {
	UserID string `json:"userId,omitempty"`
	user.UserSkill
}

type LoginResult struct {
	Token string
	User  user.User
}

// Suggestion accepts either a bare string or an object carrying the text in
// one of a few common fields.
type Suggestion string

func (s *Suggestion) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = Suggestion(strings.TrimSpace(str))
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	for _, k := range []string{"suggestion", "text", "name", "value"} {
		if v, ok := obj[k].(string); ok && strings.TrimSpace(v) != "" {
			*s = Suggestion(strings.TrimSpace(v))
			return nil
		}
	}
	*s = ""
	return nil
}
