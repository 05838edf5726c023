package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct{ id, epic, title, narrative string }

func epicOf(i item) string { return i.epic }
func textOf(i item) []string { return []string{i.title, i.narrative} }

func TestGroupByEpic(t *testing.T) {
	stories := []item{
		{id: "s1", epic: "e1"},
		{id: "s2", epic: ""},
		{id: "s3", epic: "e2"},
		{id: "s4", epic: "e1"},
		{id: "s5", epic: "deleted-epic"},
	}

	groups := GroupByEpic(stories, epicOf, []string{"e1", "e2", "e3"})

	assert.Equal(t, []item{stories[0], stories[3]}, groups["e1"])
	assert.Equal(t, []item{stories[2]}, groups["e2"])
	assert.Equal(t, []item{stories[1], stories[4]}, groups[NoEpic])
	assert.Empty(t, groups["e3"])
}

func TestSearch(t *testing.T) {
	stories := []item{
		{id: "s1", title: "Checkout flow", narrative: "As a [buyer]"},
		{id: "s2", title: "Invoices", narrative: "As an [Accountant], I want [CSV export]"},
		{id: "s3", title: "Login", narrative: "As a [user]"},
	}

	assert.Equal(t, stories, Search(stories, "   ", textOf))
	assert.Equal(t, []item{stories[0]}, Search(stories, "  CHECKOUT ", textOf))
	assert.Equal(t, []item{stories[1]}, Search(stories, "csv", textOf))
	assert.Empty(t, Search(stories, "refund", textOf))
}
