package validate

import (
	"errors"
	"testing"

	"kaamwala/internal/domain/user"
)

func validForm() user.RegistrationForm {
	return user.RegistrationForm{
		Name:         "Ravi Kumar",
		Email:        "ravi@example.com",
		Password:     "secret1",
		Gender:       "Male",
		Phone:        "+91 9876543210",
		Role:         user.RoleWorker,
		Experience:   "5",
		HourlyRate:   "300",
		ServiceAreas: "Pune",
	}
}

func TestRegistrationForm_Valid(t *testing.T) {
	if err := New().Struct(validForm()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRegistrationForm_NumericBoundsOnlyWhenNumeric(t *testing.T) {
	v := New()

	f := validForm()
	f.Experience = ""
	f.HourlyRate = "abc"
	if err := v.Struct(f); err != nil {
		t.Fatalf("non-numeric values must pass bounds, got %v", err)
	}

	f.Experience = "51"
	f.HourlyRate = "5000.5"
	err := v.Struct(f)
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	if !verrs.Has("experience") || !verrs.Has("hourlyRate") {
		t.Fatalf("expected experience and hourlyRate errors, got %v", verrs)
	}
}

func TestRegistrationForm_RoleConditionalLocation(t *testing.T) {
	v := New()

	f := validForm()
	f.ServiceAreas = ""
	if err := v.Struct(f); err == nil || !err.(Errors).Has("serviceAreas") {
		t.Fatalf("worker without serviceAreas must fail, got %v", err)
	}

	f = validForm()
	f.Role = user.RoleCustomer
	f.ServiceAreas = ""
	if err := v.Struct(f); err == nil || !err.(Errors).Has("preferredLocation") {
		t.Fatalf("customer without preferredLocation must fail, got %v", err)
	}
	f.PreferredLocation = "Nagpur"
	if err := v.Struct(f); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRegistrationForm_Phone(t *testing.T) {
	v := New()
	for _, ok := range []string{"9876543210", "+919876543210", "+91 7012345678"} {
		f := validForm()
		f.Phone = ok
		if err := v.Struct(f); err != nil {
			t.Fatalf("expected %q to be valid, got %v", ok, err)
		}
	}
	for _, bad := range []string{"6876543210", "98765", "+1 9876543210", "98765432101"} {
		f := validForm()
		f.Phone = bad
		if err := v.Struct(f); err == nil || !err.(Errors).Has("phone") {
			t.Fatalf("expected %q to be invalid, got %v", bad, err)
		}
	}
}

func TestProfileEdit_RateFloor(t *testing.T) {
	v := New()
	err := v.Struct(user.ProfileEdit{Phone: "9876543210", HourlyRate: "49"})
	if err == nil || !err.(Errors).Has("hourlyRate") {
		t.Fatalf("expected hourlyRate error, got %v", err)
	}
	if err := v.Struct(user.ProfileEdit{Phone: "9876543210", HourlyRate: "50"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
