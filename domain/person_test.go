package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		person Person
		want   string
	}{
		{"full name", Person{Username: "jdoe", FirstName: "Jane", MiddleName: "Q", LastName: "Doe"}, "Jane Q Doe"},
		{"no middle name", Person{Username: "jdoe", FirstName: "Jane", LastName: "Doe"}, "Jane Doe"},
		{"whitespace parts are skipped", Person{Username: "jdoe", FirstName: "  Jane  ", MiddleName: "   ", LastName: "Doe"}, "Jane Doe"},
		{"falls back to username", Person{Username: "jdoe"}, "jdoe"},
		{"only whitespace falls back", Person{Username: "jdoe", FirstName: " ", LastName: "\t"}, "jdoe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.person.DisplayName())
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleInstructor.Valid())
	assert.True(t, RoleStudent.Valid())
	assert.False(t, Role("guardian").Valid())
	assert.False(t, Role("").Valid())
}
