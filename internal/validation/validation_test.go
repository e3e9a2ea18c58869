package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/validation"
)

func strPtr(s string) *string { return &s }

func validRequest() dto.EmployeeRequest {
	return dto.EmployeeRequest{
		FirstName: "Miluka12",
		LastName:  "DeSilvaX",
		Email:     "a@b.com",
		Phone:     "+94775065089",
		Gender:    strPtr("M"),
	}
}

func TestValidate_Valid(t *testing.T) {
	v := validation.New()
	req := validRequest()

	require.NoError(t, v.Validate(req))
	assert.Equal(t, validRequest(), req)

	req.Gender = nil
	require.NoError(t, v.Validate(req), "gender is optional")
}

func TestValidate_FieldRules(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name   string
		mutate func(*dto.EmployeeRequest)
		want   []string
	}{
		{"empty first name", func(r *dto.EmployeeRequest) { r.FirstName = "" }, []string{"First name is required", "Minimum length is 6 characters"}},
		{"short first name", func(r *dto.EmployeeRequest) { r.FirstName = "Ann" }, []string{"Minimum length is 6 characters"}},
		{"long first name", func(r *dto.EmployeeRequest) { r.FirstName = "Alexandrina" }, []string{"Max length is 10 characters"}},
		{"empty last name", func(r *dto.EmployeeRequest) { r.LastName = "" }, []string{"Last name is required", "Minimum length is 6 characters"}},
		{"short last name", func(r *dto.EmployeeRequest) { r.LastName = "Perer" }, []string{"Minimum length is 6 characters"}},
		{"long last name", func(r *dto.EmployeeRequest) { r.LastName = "Wickramasinghe" }, []string{"Max length is 10 characters"}},
		{"empty email", func(r *dto.EmployeeRequest) { r.Email = "" }, []string{"Email is required"}},
		{"bad email", func(r *dto.EmployeeRequest) { r.Email = "not-an-email" }, []string{"Invalid email address"}},
		{"empty phone", func(r *dto.EmployeeRequest) { r.Phone = "" }, []string{"Phone number is required"}},
		{"local phone", func(r *dto.EmployeeRequest) { r.Phone = "0775065089" }, []string{"This should be a valid Sri Lankan phone no"}},
		{"phone leading zero", func(r *dto.EmployeeRequest) { r.Phone = "+94075065089" }, []string{"This should be a valid Sri Lankan phone no"}},
		{"phone too long", func(r *dto.EmployeeRequest) { r.Phone = "+947750650899" }, []string{"This should be a valid Sri Lankan phone no"}},
		{"gender lower case", func(r *dto.EmployeeRequest) { r.Gender = strPtr("m") }, []string{"Inavalid gender option"}},
		{"gender empty", func(r *dto.EmployeeRequest) { r.Gender = strPtr("") }, []string{"Inavalid gender option"}},
		{"gender word", func(r *dto.EmployeeRequest) { r.Gender = strPtr("Male") }, []string{"Inavalid gender option"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := v.Validate(req)
			require.Error(t, err)

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tc.want, []string(verrs))
		})
	}
}

func TestValidate_LengthBoundaries(t *testing.T) {
	v := validation.New()

	for _, name := range []string{"Abcdef", "Abcdefghij", "Ünïcödé"} {
		req := validRequest()
		req.FirstName = name
		req.LastName = name
		assert.NoError(t, v.Validate(req), name)
	}
}

func TestValidate_CollectsAllInDeclarationOrder(t *testing.T) {
	v := validation.New()

	err := v.Validate(dto.EmployeeRequest{
		FirstName: "Ann",
		LastName:  "",
		Email:     "nope",
		Phone:     "123",
		Gender:    strPtr("X"),
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, validation.Errors{
		"Minimum length is 6 characters",
		"Last name is required",
		"Minimum length is 6 characters",
		"Invalid email address",
		"This should be a valid Sri Lankan phone no",
		"Inavalid gender option",
	}, verrs)
}

func TestValidate_AcceptsEveryLeadingDigit(t *testing.T) {
	v := validation.New()

	for d := '1'; d <= '9'; d++ {
		req := validRequest()
		req.Phone = "+94" + string(d) + "12345678"
		assert.NoError(t, v.Validate(req), req.Phone)
	}
}

func TestValidate_DecodedPayloads(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "empty names report length",
			body: `{"firstName":"","lastName":"","email":"a@b.com","phone":"+94775065089"}`,
			want: []string{"First name is required", "Minimum length is 6 characters", "Last name is required", "Minimum length is 6 characters"},
		},
		{
			name: "absent names report required only",
			body: `{"email":"a@b.com","phone":"+94775065089"}`,
			want: []string{"First name is required", "Last name is required"},
		},
		{
			name: "null name reports required only",
			body: `{"firstName":null,"lastName":"DeSilvaX","email":"a@b.com","phone":"+94775065089"}`,
			want: []string{"First name is required"},
		},
		{
			name: "null gender is rejected",
			body: `{"firstName":"Miluka12","lastName":"DeSilvaX","email":"a@b.com","phone":"+94775065089","gender":null}`,
			want: []string{"Inavalid gender option"},
		},
		{
			name: "empty object",
			body: `{}`,
			want: []string{"First name is required", "Last name is required", "Email is required", "Phone number is required"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req dto.EmployeeRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))

			var verrs validation.Errors
			require.ErrorAs(t, v.Validate(req), &verrs)
			assert.Equal(t, tc.want, []string(verrs))
		})
	}
}

func TestValidate_DecodedWithoutGender(t *testing.T) {
	var req dto.EmployeeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"firstName":"Miluka12","lastName":"DeSilvaX","email":"a@b.com","phone":"+94775065089"}`), &req))

	assert.Nil(t, req.Gender)
	assert.NoError(t, validation.New().Validate(req))
}
