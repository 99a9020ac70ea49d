package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name        string `json:"name" validate:"required,max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
	Description string `json:"description" validate:"max=500"`
	Internal    string `validate:"omitempty,min=3"`
}

func TestStruct_Valid(t *testing.T) {
	problems := Struct(sampleInput{Name: "Q3 Outreach"})

	assert.Nil(t, problems)
}

func TestStruct_RequiredField(t *testing.T) {
	problems := Struct(sampleInput{})

	require.Len(t, problems, 1)
	assert.Equal(t, "is required", problems["name"])
}

func TestStruct_MaxLength(t *testing.T) {
	problems := Struct(sampleInput{
		Name:        strings.Repeat("x", 51),
		Description: strings.Repeat("y", 501),
	})

	require.Len(t, problems, 2)
	assert.Equal(t, "cannot exceed 50 characters", problems["name"])
	assert.Equal(t, "cannot exceed 500 characters", problems["description"])
}

func TestStruct_Email(t *testing.T) {
	problems := Struct(sampleInput{Name: "ok", Email: "not-an-email"})

	require.Len(t, problems, 1)
	assert.Equal(t, "must be a valid email address", problems["email"])
}

func TestStruct_MinLength(t *testing.T) {
	problems := Struct(sampleInput{Name: "ok", Internal: "ab"})

	require.Len(t, problems, 1)
	assert.Equal(t, "must be at least 3 characters", problems["Internal"])
}

func TestStruct_FieldsNamedByJSONTag(t *testing.T) {
	problems := Struct(sampleInput{})

	_, hasGoName := problems["Name"]
	assert.False(t, hasGoName)
	assert.Contains(t, problems, "name")
}
