package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routeworks/rosterlink/pkg/reconcile"
)

func TestCleanAddress(t *testing.T) {
	t.Run("strips extraction prefixes", func(t *testing.T) {
		assert.Equal(t, "123 Main Street", reconcile.CleanAddress(":selected: 123 Main St"))
		assert.Equal(t, "123 Main Street", reconcile.CleanAddress("selected: 123 Main St"))
		assert.Equal(t, "123 Main Street", reconcile.CleanAddress(":choice: 123 Main St"))
	})

	t.Run("expands abbreviations", func(t *testing.T) {
		assert.Equal(t, "456 Oak Avenue North", reconcile.CleanAddress("456 Oak Ave N "))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "123 Main Street", reconcile.CleanAddress("  123   Main   Street "))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", reconcile.CleanAddress(""))
		assert.Equal(t, "", reconcile.CleanAddress("   "))
	})
}

func TestAddressesEquivalent(t *testing.T) {
	t.Run("identical addresses", func(t *testing.T) {
		assert.True(t, reconcile.AddressesEquivalent("123 Main St", "123 Main St"))
	})

	t.Run("abbreviation differences", func(t *testing.T) {
		assert.True(t, reconcile.AddressesEquivalent("123 Main Street", "123 Main St"))
		assert.True(t, reconcile.AddressesEquivalent("456 North Oak Avenue", "456 N Oak Ave"))
	})

	t.Run("locale suffix differences", func(t *testing.T) {
		assert.True(t, reconcile.AddressesEquivalent("123 Main St, Minneapolis, MN", "123 Main St, Minneapolis"))
	})

	t.Run("one side carries extra detail", func(t *testing.T) {
		assert.True(t, reconcile.AddressesEquivalent("123 Main St", "123 Main St Apt 4"))
	})

	t.Run("different house numbers differ", func(t *testing.T) {
		assert.False(t, reconcile.AddressesEquivalent("123 Main St", "125 Main St"))
	})

	t.Run("different streets differ", func(t *testing.T) {
		assert.False(t, reconcile.AddressesEquivalent("123 Main St", "123 Oak St"))
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"123 Main St", "123 Main Street, Minneapolis MN"},
			{"456 Oak Ave", "789 Elm Dr"},
			{"", "123 Main St"},
		}
		for _, p := range pairs {
			assert.Equal(t,
				reconcile.AddressesEquivalent(p[0], p[1]),
				reconcile.AddressesEquivalent(p[1], p[0]),
				"pair %v", p)
		}
	})

	t.Run("empty never equals a real address", func(t *testing.T) {
		assert.False(t, reconcile.AddressesEquivalent("", "123 Main St"))
		assert.True(t, reconcile.AddressesEquivalent("", ""))
	})
}
