package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/m/domain"
)

func TestMedicines_CompositeKey(t *testing.T) {
	ctx := context.Background()
	repo := NewMedicines(newTestDB(t))

	a := &domain.Medicine{DrugName: "Amoxicillin", BatchNumber: "B1", MedicineType: "Capsule",
		Manufacturer: "Acme", Quantity: 40, ExpiryDate: date(2027, time.January, 31), Price: ptr(4.5)}
	b := &domain.Medicine{DrugName: "Amoxicillin", BatchNumber: "B2", Quantity: 10}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.Get(ctx, "Amoxicillin", "B1")
	require.NoError(t, err)
	assert.Equal(t, int64(40), got.Quantity)
	assert.Equal(t, 4.5, *got.Price)
	assert.True(t, a.ExpiryDate.Equal(*got.ExpiryDate))

	got, err = repo.Get(ctx, "Amoxicillin", "B2")
	require.NoError(t, err)
	assert.Nil(t, got.Price)
	assert.Nil(t, got.ExpiryDate)

	_, err = repo.Get(ctx, "Amoxicillin", "B3")
	assert.ErrorIs(t, err, ErrNotFound)

	b.Quantity = 0
	b.Price = ptr(1.25)
	require.NoError(t, repo.Update(ctx, b))
	got, err = repo.Get(ctx, "Amoxicillin", "B2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Quantity)
	assert.Equal(t, 1.25, *got.Price)

	require.NoError(t, repo.Delete(ctx, "Amoxicillin", "B1"))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B2", list[0].BatchNumber)
}
