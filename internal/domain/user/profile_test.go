package user

import (
	"fmt"
	"testing"
)

type counterIDs struct{ n int }

func (c *counterIDs) SkillID(userID string) string {
	c.n++
	return fmt.Sprintf("USK_%s_%d", userID, c.n)
}

func TestMergeProfile_CustomerBackfillsServiceAreas(t *testing.T) {
	current := User{UserID: "u1", Role: RoleCustomer}
	got := MergeProfile(current, ProfileEdit{PreferredLocation: "Nagpur"}, &counterIDs{})
	if got.PreferredLocation != "Nagpur" || got.ServiceAreas != "Nagpur" {
		t.Fatalf("expected both locations Nagpur, got %q / %q", got.PreferredLocation, got.ServiceAreas)
	}
}

func TestMergeProfile_WorkerBackfillsPreferredLocation(t *testing.T) {
	current := User{UserID: "u1", Role: RoleWorker}
	got := MergeProfile(current, ProfileEdit{ServiceAreas: "Pune"}, &counterIDs{})
	if got.ServiceAreas != "Pune" || got.PreferredLocation != "Pune" {
		t.Fatalf("expected both locations Pune, got %q / %q", got.ServiceAreas, got.PreferredLocation)
	}
}

func TestMergeProfile_OverwritesNumericWithCoercion(t *testing.T) {
	current := User{UserID: "u1", Role: RoleWorker, Phone: "9876543210", Experience: 9, HourlyRate: 400}
	got := MergeProfile(current, ProfileEdit{Phone: "", Experience: "-3", HourlyRate: "x"}, &counterIDs{})
	if got.Phone != "" || got.Experience != 0 || got.HourlyRate != 0 {
		t.Fatalf("expected overwrite with zero values, got %+v", got)
	}
}

func TestMergeProfile_OnlyFirstSkillIsPrimary(t *testing.T) {
	for n := 1; n <= 5; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("SUB_%d", i)
		}
		got := MergeProfile(User{UserID: "u1", Role: RoleWorker}, ProfileEdit{
			Experience: "4",
			HourlyRate: "350",
			Skills:     ids,
		}, &counterIDs{})

		if len(got.UserSkills) != n {
			t.Fatalf("expected %d skills, got %d", n, len(got.UserSkills))
		}
		primaries := 0
		seen := map[string]bool{}
		for i, s := range got.UserSkills {
			if s.IsPrimarySkill {
				primaries++
				if i != 0 {
					t.Fatalf("primary skill at index %d", i)
				}
			}
			if s.ProficiencyLevel != ProficiencyIntermediate || s.ExperienceYears != 4 || s.SkillHourlyRate != 350 {
				t.Fatalf("unexpected skill %+v", s)
			}
			if seen[s.UserSkillID] {
				t.Fatalf("duplicate skill id %q", s.UserSkillID)
			}
			seen[s.UserSkillID] = true
		}
		if primaries != 1 {
			t.Fatalf("expected exactly one primary, got %d", primaries)
		}
	}
}

func TestMergeProfile_NoSkillsKeepsExisting(t *testing.T) {
	current := User{UserID: "u1", Role: RoleWorker, UserSkills: []UserSkill{{UserSkillID: "a"}}}
	got := MergeProfile(current, ProfileEdit{ServiceAreas: "Pune"}, &counterIDs{})
	if len(got.UserSkills) != 1 || got.UserSkills[0].UserSkillID != "a" {
		t.Fatalf("expected existing skills kept, got %+v", got.UserSkills)
	}
}

func TestIsProfileComplete(t *testing.T) {
	base := User{Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210", Gender: "male"}

	worker := base
	worker.Role = RoleWorker
	worker.ServiceAreas = "Pune"
	worker.Experience = 5
	worker.HourlyRate = 300
	if IsProfileComplete(worker) {
		t.Fatalf("worker without preferredLocation must be incomplete")
	}
	if CallToAction(worker) != ActionComplete {
		t.Fatalf("expected complete action")
	}
	worker.PreferredLocation = "Pune"
	if !IsProfileComplete(worker) {
		t.Fatalf("expected complete worker")
	}

	customer := base
	customer.Role = RoleCustomer
	customer.PreferredLocation = "Nagpur"
	if !IsProfileComplete(customer) {
		t.Fatalf("expected complete customer")
	}
	if CallToAction(customer) != ActionEdit {
		t.Fatalf("expected edit action")
	}

	customer.Gender = " "
	if IsProfileComplete(customer) {
		t.Fatalf("blank gender must be incomplete")
	}
}

func TestPrimaryLocation(t *testing.T) {
	w := User{Role: RoleWorker, PreferredLocation: "Thane"}
	if w.PrimaryLocation() != "Thane" {
		t.Fatalf("expected worker fallback to preferredLocation")
	}
	c := User{Role: RoleCustomer, ServiceAreas: "Pune", PreferredLocation: "Nagpur"}
	if c.PrimaryLocation() != "Nagpur" {
		t.Fatalf("expected customer preferredLocation")
	}
}
