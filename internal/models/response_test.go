package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salmatarekx/EventPlanner/internal/models"
)

func TestSettable(t *testing.T) {
	assert.True(t, models.Going.Settable())
	assert.True(t, models.Maybe.Settable())
	assert.True(t, models.NotGoing.Settable())
	assert.False(t, models.NoResponse.Settable())
	assert.False(t, models.Response("going").Settable(), "responses are case-sensitive")
	assert.False(t, models.Response("").Settable())
}

func TestBadgeClass(t *testing.T) {
	assert.Equal(t, "response-going", models.BadgeClass("Going"))
	assert.Equal(t, "response-maybe", models.BadgeClass("Maybe"))
	assert.Equal(t, "response-not-going", models.BadgeClass("Not Going"))
	assert.Equal(t, "response-no-response", models.BadgeClass("No Response"))
	assert.Empty(t, models.BadgeClass(""))
}

func TestSearchFilterEmpty(t *testing.T) {
	assert.True(t, models.SearchFilter{}.Empty())
	assert.True(t, models.SearchFilter{Keyword: "   ", Role: "\t"}.Empty())
	assert.False(t, models.SearchFilter{Keyword: "party"}.Empty())
	assert.False(t, models.SearchFilter{EndDate: "2026-09-12"}.Empty())
}
