package service

import (
	"ContinuumLoot/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_diffClassPrios(t *testing.T) {
	item := &model.Item{
		ID: 42,
		ClassPrios: []model.ClassPrio{
			{ID: 1, ItemID: 42, ClassName: "Hunter", Prio: 1},
			{ID: 2, ItemID: 42, ClassName: "Rogue", Prio: 2},
		},
	}

	t.Run("identical set is a no-op", func(t *testing.T) {
		toAdd, toDelete := diffClassPrios(9, item, []ClassPrioDTO{
			{Class: "Hunter", Prio: 1},
			{Class: "Rogue", Prio: 2},
		})
		assert.Empty(t, toAdd)
		assert.Empty(t, toDelete)
	})

	t.Run("swap records the caller in set_by", func(t *testing.T) {
		toAdd, toDelete := diffClassPrios(9, item, []ClassPrioDTO{
			{Class: "Hunter", Prio: 1},
			{Class: "Warrior", Prio: 2},
		})
		if assert.Len(t, toAdd, 1) {
			assert.Equal(t, "Warrior", toAdd[0].ClassName)
			assert.Equal(t, int64(42), toAdd[0].ItemID)
			if assert.NotNil(t, toAdd[0].SetByID) {
				assert.Equal(t, int64(9), *toAdd[0].SetByID)
			}
		}
		assert.Equal(t, []int64{2}, toDelete)
	})

	t.Run("duplicate pair in one request creates a single rule", func(t *testing.T) {
		toAdd, toDelete := diffClassPrios(9, item, []ClassPrioDTO{
			{Class: "Hunter", Prio: 1},
			{Class: "Warrior", Prio: 2},
			{Class: "Warrior", Prio: 2},
		})
		assert.Len(t, toAdd, 1)
		assert.Equal(t, []int64{2}, toDelete)
	})
}

func Test_diffIndividualPrios(t *testing.T) {
	item := &model.Item{
		ID: 42,
		IndividualPrios: []model.IndividualPrio{
			{ID: 10, ItemID: 42, PlayerID: 5, Prio: 1},
		},
	}

	t.Run("identical set is a no-op", func(t *testing.T) {
		toAdd, toDelete := diffIndividualPrios(9, item, []IndividualPrioDTO{{PlayerID: 5, Prio: 1}})
		assert.Empty(t, toAdd)
		assert.Empty(t, toDelete)
	})

	t.Run("replace player", func(t *testing.T) {
		toAdd, toDelete := diffIndividualPrios(9, item, []IndividualPrioDTO{{PlayerID: 6, Prio: 1}})
		if assert.Len(t, toAdd, 1) {
			assert.Equal(t, int64(6), toAdd[0].PlayerID)
			assert.Equal(t, int64(42), toAdd[0].ItemID)
		}
		assert.Equal(t, []int64{10}, toDelete)
	})

	t.Run("empty target prunes", func(t *testing.T) {
		toAdd, toDelete := diffIndividualPrios(9, item, nil)
		assert.Empty(t, toAdd)
		assert.Equal(t, []int64{10}, toDelete)
	})

	t.Run("duplicate pair in one request creates a single rule", func(t *testing.T) {
		toAdd, toDelete := diffIndividualPrios(9, item, []IndividualPrioDTO{
			{PlayerID: 5, Prio: 1},
			{PlayerID: 6, Prio: 2},
			{PlayerID: 6, Prio: 2},
		})
		assert.Len(t, toAdd, 1)
		assert.Empty(t, toDelete)
	})
}
