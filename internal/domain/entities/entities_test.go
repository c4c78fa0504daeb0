package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStallID(t *testing.T) {
	assert.Equal(t, "chai_corner", NormalizeStallID("  Chai_Corner "))
	assert.Equal(t, "", NormalizeStallID("   "))
}

func TestIsValidStallID(t *testing.T) {
	assert.True(t, IsValidStallID("Stall_42"))
	assert.False(t, IsValidStallID("stall-42"))
	assert.False(t, IsValidStallID("stall 42"))
	assert.False(t, IsValidStallID(""))
}

func TestQuestion_TargetsStall(t *testing.T) {
	q := &Question{Scope: QuestionScopeSpecific, TargetStalls: []string{"S1", "s2"}}

	assert.True(t, q.TargetsStall("s1"))
	assert.True(t, q.TargetsStall(" S2 "))
	assert.False(t, q.TargetsStall("s3"))
	assert.False(t, q.TargetsStall(""))
}

func TestStallFilter(t *testing.T) {
	var none *StallFilter
	assert.True(t, none.Contains("anything"))
	assert.Nil(t, none.IDs())

	f := NewStallFilter([]string{"s1", "s2", "s1"})
	assert.True(t, f.Contains("s1"))
	assert.False(t, f.Contains("S1"))
	assert.Equal(t, []string{"s1", "s2"}, f.IDs())

	empty := NewStallFilter(nil)
	assert.False(t, empty.Contains("s1"))
}

func TestStall_DisplayName(t *testing.T) {
	assert.Equal(t, "Chai Point", (&Stall{StallID: "cp", Name: "Chai Point"}).DisplayName())
	assert.Equal(t, "cp", (&Stall{StallID: "cp"}).DisplayName())
}
