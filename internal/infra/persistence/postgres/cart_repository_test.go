package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The cart write statements are the only place the stock and product
// liveness invariants are enforced, so their predicates are pinned here.

func TestAddItemSQL_GuardsStockAndProductLiveness(t *testing.T) {
	assert.Contains(t, addItemSQL, "pv.stock >= ? + COALESCE((")
	// A soft-deleted product keeps its variant rows; without this predicate
	// its variants would remain addable to carts.
	assert.Contains(t, addItemSQL, "p.id = pv.product_id AND p.deleted_at IS NULL")
	assert.Contains(t, addItemSQL, "ON CONFLICT (user_id, variant_id)")
}

func TestUpdateQuantitySQL_GuardsStockAndProductLiveness(t *testing.T) {
	assert.Contains(t, updateQuantitySQL, "pv.stock >= ?")
	assert.Contains(t, updateQuantitySQL, "p.id = pv.product_id AND p.deleted_at IS NULL")
}

func TestCartWriteSQL_SingleStatementPerGuard(t *testing.T) {
	// Each guard must stay inside one statement; splitting the check from
	// the write would reopen the oversell window.
	assert.Equal(t, 1, strings.Count(addItemSQL, ";")+1)
	assert.Equal(t, 1, strings.Count(updateQuantitySQL, ";")+1)
}
