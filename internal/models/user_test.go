package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_DisplayName(t *testing.T) {
	t.Parallel()
	user := &User{FirstName: "Sarah", LastName: "Chen"}

	assert.Equal(t, "Sarah Chen", user.DisplayName())
}

func TestUser_Clone(t *testing.T) {
	t.Parallel()
	user := &User{ID: "u1", Skills: []string{"go"}}

	cp := user.Clone()
	cp.Skills[0] = "rust"

	assert.Equal(t, "go", user.Skills[0])
	assert.Nil(t, (*User)(nil).Clone())
}
