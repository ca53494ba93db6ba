package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebitservices/SaborHub-sub000/cart"
)

func TestLineKeyNoSelectionsIsSimple(t *testing.T) {
	assert.Equal(t, "A-simple", cart.LineKey("A", nil))
	assert.Equal(t, "A-simple", cart.LineKey("A", map[string][]string{}))
}

func TestLineKeyEmptySelectionListsAreIgnored(t *testing.T) {
	key := cart.LineKey("A", map[string][]string{"extras": {}})
	assert.Equal(t, "A-simple", key)
}

func TestLineKeyFormat(t *testing.T) {
	key := cart.LineKey("pizza", map[string][]string{
		"size":   {"large"},
		"extras": {"olives", "cheese"},
	})
	assert.Equal(t, "pizza-extras:cheese,olives|size:large", key)
}

func TestLineKeyInvariantUnderOptionOrder(t *testing.T) {
	options := []string{"a", "b", "c"}
	permutations := [][]string{
		{"a", "b", "c"}, {"a", "c", "b"},
		{"b", "a", "c"}, {"b", "c", "a"},
		{"c", "a", "b"}, {"c", "b", "a"},
	}

	want := cart.LineKey("p1", map[string][]string{"extras": options})
	for _, perm := range permutations {
		got := cart.LineKey("p1", map[string][]string{"extras": perm})
		assert.Equal(t, want, got)
	}
}

func TestLineKeyDistinguishesSelections(t *testing.T) {
	large := cart.LineKey("pizza", map[string][]string{"size": {"large"}})
	small := cart.LineKey("pizza", map[string][]string{"size": {"small"}})
	assert.NotEqual(t, large, small)
}
