// Package idgen mints placeholder identifiers for records the gateway builds
// before the backend has stored them. Ids are unique within a process only.
package idgen

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const skillPrefix = "USK"

// Generator produces user-skill ids scoped to a user.
type Generator interface {
	SkillID(userID string) string
}

// UUID builds USK_{userId}_{uuid}. It does not depend on the clock.
type UUID struct{}

func NewUUID() UUID { return UUID{} }

func (UUID) SkillID(userID string) string {
	return skillPrefix + "_" + userID + "_" + uuid.NewString()
}

// Sequential builds USK_{userId}_{unixMillis}_{counter}. The counter is
// shared by all callers of one Sequential value.
type Sequential struct {
	counter atomic.Uint64
	now     func() time.Time
}

func NewSequential() *Sequential {
	return &Sequential{now: time.Now}
}

func (s *Sequential) SkillID(userID string) string {
	n := s.counter.Add(1)
	return skillPrefix + "_" + userID + "_" + millis(s.now()) + "_" + strconv.FormatUint(n, 10)
}

var (
	_ Generator = UUID{}
	_ Generator = (*Sequential)(nil)
)

func millis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
