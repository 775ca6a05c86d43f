package postgres

import (
	"testing"

	"snapcase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffVariants_MatchedPairKeepsIdentity(t *testing.T) {
	existingID := uuid.New()
	productID := uuid.New()
	existing := []*model.ProductVariantModel{
		{ID: existingID, ProductID: productID, PhoneModel: "IPHONE_15", Color: "black", Stock: 5, Image: "old.png", SKU: "SNP-AAA"},
	}
	desired := []*model.ProductVariantModel{
		{PhoneModel: "IPHONE_15", Color: "black", Stock: 9, Image: "new.png", SKU: "SNP-BBB"},
	}

	diff := diffVariants(existing, desired)

	require.Len(t, diff.toUpdate, 1)
	assert.Empty(t, diff.toCreate)
	assert.Empty(t, diff.toDeleteIDs)

	updated := diff.toUpdate[0]
	// The stored row keeps its ID and SKU; cart entries keyed on the ID
	// stay valid across the edit.
	assert.Equal(t, existingID, updated.ID)
	assert.Equal(t, "SNP-AAA", updated.SKU)
	assert.Equal(t, 9, updated.Stock)
	assert.Equal(t, "new.png", updated.Image)
}

func TestDiffVariants_NewPairIsCreated(t *testing.T) {
	existing := []*model.ProductVariantModel{
		{ID: uuid.New(), PhoneModel: "IPHONE_15", Color: "black"},
	}
	desired := []*model.ProductVariantModel{
		{PhoneModel: "IPHONE_15", Color: "black", Stock: 3},
		{PhoneModel: "IPHONE_15", Color: "red", Stock: 7, SKU: "SNP-CCC"},
	}

	diff := diffVariants(existing, desired)

	assert.Len(t, diff.toUpdate, 1)
	require.Len(t, diff.toCreate, 1)
	assert.Equal(t, "red", diff.toCreate[0].Color)
	assert.Equal(t, "SNP-CCC", diff.toCreate[0].SKU)
	assert.Empty(t, diff.toDeleteIDs)
}

func TestDiffVariants_DroppedPairIsDeleted(t *testing.T) {
	keptID, droppedID := uuid.New(), uuid.New()
	existing := []*model.ProductVariantModel{
		{ID: keptID, PhoneModel: "IPHONE_15", Color: "black"},
		{ID: droppedID, PhoneModel: "PIXEL_8", Color: "blue"},
	}
	desired := []*model.ProductVariantModel{
		{PhoneModel: "IPHONE_15", Color: "black", Stock: 1},
	}

	diff := diffVariants(existing, desired)

	assert.Len(t, diff.toUpdate, 1)
	assert.Empty(t, diff.toCreate)
	assert.Equal(t, []uuid.UUID{droppedID}, diff.toDeleteIDs)
}

func TestDiffVariants_EmptyDesiredDropsAll(t *testing.T) {
	existing := []*model.ProductVariantModel{
		{ID: uuid.New(), PhoneModel: "IPHONE_15", Color: "black"},
		{ID: uuid.New(), PhoneModel: "IPHONE_15", Color: "red"},
	}

	diff := diffVariants(existing, nil)

	assert.Empty(t, diff.toUpdate)
	assert.Empty(t, diff.toCreate)
	assert.Len(t, diff.toDeleteIDs, 2)
}
