package taskutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskpanel/core/internal/domain/entities"
)

func TestCategoryIcon(t *testing.T) {
	t.Run("catalog icon gets the solid prefix", func(t *testing.T) {
		category := &entities.TaskCategory{Icon: "fa-briefcase"}
		assert.Equal(t, "fa-solid fa-briefcase", CategoryIcon(category))
	})

	t.Run("nil category falls back to default", func(t *testing.T) {
		assert.Equal(t, DefaultCategoryIcon, CategoryIcon(nil))
	})

	t.Run("unknown icon falls back to default", func(t *testing.T) {
		category := &entities.TaskCategory{Icon: "fa-unicorn"}
		assert.Equal(t, DefaultCategoryIcon, CategoryIcon(category))
	})
}

func TestIconLabel(t *testing.T) {
	assert.Equal(t, "Dom", IconLabel("fa-house"))
	assert.Equal(t, "Szklana Kolba", IconLabel("fa-flask"))
	assert.Equal(t, "", IconLabel("fa-unicorn"))
}

func TestIconKeys(t *testing.T) {
	keys := IconKeys()
	assert.Len(t, keys, 21)
	assert.True(t, sort.StringsAreSorted(keys))
	assert.Contains(t, keys, "fa-wand-magic-sparkles")
}
