package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUpdatePlanInitializesAllSets(t *testing.T) {
	plan := NewUpdatePlan()
	assert.NotNil(t, plan.Added)
	assert.NotNil(t, plan.Modified)
	assert.NotNil(t, plan.Deleted)
	assert.NotNil(t, plan.Unchanged)
	assert.Empty(t, plan.Added)
	assert.Empty(t, plan.Modified)
	assert.Empty(t, plan.Deleted)
	assert.Empty(t, plan.Unchanged)
}

func TestUpdatePlanToDispatchUnionsAddedAndModified(t *testing.T) {
	plan := NewUpdatePlan()
	plan.Added["new.go"] = true
	plan.Modified["changed.go"] = true
	plan.Deleted["gone.go"] = true
	plan.Unchanged["same.go"] = true

	dispatch := plan.ToDispatch()
	assert.ElementsMatch(t, []string{"new.go", "changed.go"}, dispatch)
}

func TestUpdatePlanToDispatchEmptyWhenNothingChanged(t *testing.T) {
	plan := NewUpdatePlan()
	plan.Unchanged["same.go"] = true
	assert.Empty(t, plan.ToDispatch())
}
