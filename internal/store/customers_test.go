package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/m/domain"
)

func TestCustomers_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomers(newTestDB(t))

	john := &domain.Customer{
		SSN:         "123456789",
		FirstName:   "John",
		LastName:    "Doe",
		Phone:       "555-0100",
		Gender:      ptr("M"),
		Address:     "1 Main St",
		DateOfBirth: date(1980, time.May, 17),
	}
	require.NoError(t, repo.Create(ctx, john))

	got, err := repo.Get(ctx, "123456789")
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "M", *got.Gender)
	require.NotNil(t, got.DateOfBirth)
	assert.True(t, john.DateOfBirth.Equal(*got.DateOfBirth))

	john.Address = "2 High St"
	john.Gender = nil
	require.NoError(t, repo.Update(ctx, john))
	got, err = repo.Get(ctx, "123456789")
	require.NoError(t, err)
	assert.Equal(t, "2 High St", got.Address)
	assert.Nil(t, got.Gender)

	require.NoError(t, repo.Delete(ctx, "123456789"))
	_, err = repo.Get(ctx, "123456789")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomers_ListAndIdempotentDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomers(newTestDB(t))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, ssn := range []string{"111", "222", "333"} {
		require.NoError(t, repo.Create(ctx, &domain.Customer{SSN: ssn}))
	}
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	require.NoError(t, repo.Delete(ctx, "does-not-exist"))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCustomers_DuplicateKeyIsStoreError(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomers(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &domain.Customer{SSN: "111"}))
	err := repo.Create(ctx, &domain.Customer{SSN: "111"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCustomers_UpdateMissingRowIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomers(newTestDB(t))

	require.NoError(t, repo.Update(ctx, &domain.Customer{SSN: "ghost", FirstName: "Nobody"}))
	_, err := repo.Get(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomers_PostgresPlaceholders(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewCustomers(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM customers WHERE ssn = $1`)).
		WithArgs("123456789").
		WillReturnRows(sqlmock.NewRows([]string{"ssn", "first_name", "last_name", "phone", "gender", "address", "date_of_birth"}).
			AddRow("123456789", "John", "Doe", "555-0100", nil, "1 Main St", nil))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM customers WHERE ssn = $1`)).
		WithArgs("123456789").
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Get(context.Background(), "123456789")
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
	assert.Nil(t, got.Gender)

	require.NoError(t, repo.Delete(context.Background(), "123456789"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomers_DateOfBirthWithOffset(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomers(newTestDB(t))

	born := time.Date(1980, time.May, 17, 0, 0, 0, 0, time.FixedZone("", -5*60*60))
	require.NoError(t, repo.Create(ctx, &domain.Customer{SSN: "2", FirstName: "Ana", DateOfBirth: &born}))

	got, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, got.DateOfBirth)
	assert.True(t, born.Equal(*got.DateOfBirth))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, born.Equal(*list[0].DateOfBirth))
}
