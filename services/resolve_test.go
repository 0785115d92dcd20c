package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveUnit(t *testing.T) {
	// precedence: total_unit, total_uom, first item unit, then KG
	assert.Equal(t, "MT", ResolveUnit("MT", "DRUM", "L"))
	assert.Equal(t, "DRUM", ResolveUnit("", "DRUM", "L"))
	assert.Equal(t, "L", ResolveUnit("", "  ", "L"))
	assert.Equal(t, "KG", ResolveUnit("", "", ""))
	assert.Equal(t, "KG", ResolveUnit())
	assert.Equal(t, "MT", ResolveUnit("  MT  "))
}

func TestResolveDate(t *testing.T) {
	assert.Equal(t, "2025-08-24", ResolveDate("2025-08-24", "2025-08-25"))
	assert.Equal(t, "2025-08-25", ResolveDate("", "2025-08-25"))
	assert.Equal(t, "", ResolveDate("", "  "))
}
