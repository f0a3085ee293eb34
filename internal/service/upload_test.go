package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_toInt64(t *testing.T) {
	// JSON-число декодируется в float64
	id, ok := toInt64(float64(42))
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	id, ok = toInt64(int64(7))
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	id, ok = toInt64("15")
	assert.True(t, ok)
	assert.Equal(t, int64(15), id)

	_, ok = toInt64("New")
	assert.False(t, ok)

	_, ok = toInt64(nil)
	assert.False(t, ok)
}

func Test_splitNameClass(t *testing.T) {
	name, class := splitNameClass("Ormgar-Shaman", "Warrior")
	assert.Equal(t, "Ormgar", name)
	assert.Equal(t, "Shaman", class)

	// без суффикса — класс из fallback
	name, class = splitNameClass("Fizzle", "Warrior")
	assert.Equal(t, "Fizzle", name)
	assert.Equal(t, "Warrior", class)

	// пробелы и пустой суффикс
	name, class = splitNameClass("  Rexxi- ", "Warrior")
	assert.Equal(t, "Rexxi", name)
	assert.Equal(t, "Warrior", class)

	name, _ = splitNameClass("  ", "Warrior")
	assert.Equal(t, "", name)
}

func Test_NormalizeName(t *testing.T) {
	assert.Equal(t, "David", NormalizeName("dAvId"))
	assert.Equal(t, "David", NormalizeName("  DAVID "))
	assert.Equal(t, "David", NormalizeName("david"))
}

func Test_classCode(t *testing.T) {
	assert.Equal(t, "PL", classCode("Paladin"))
	assert.Equal(t, "PL", classCode("paladin"))
	// неизвестный класс — Warrior
	assert.Equal(t, "WR", classCode("Necromancer"))
	assert.Equal(t, "WR", classCode(""))
}

func Test_roleCode(t *testing.T) {
	assert.Equal(t, "H", roleCode("Healer"))
	assert.Equal(t, "T", roleCode("tank"))
	assert.Equal(t, "D", roleCode("DPS"))
	assert.Equal(t, "D", roleCode("dps"))
	assert.Equal(t, "D", roleCode("whatever"))
}
