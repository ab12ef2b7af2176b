package rop

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/either/pkg/either"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	res := Success(5)

	assert.True(t, res.IsSuccess())
	assert.False(t, res.IsFailure())
	assert.Equal(t, 5, res.Result())
	assert.NoError(t, res.Err())
	assert.NotEqual(t, uuid.Nil, res.Id())
	assert.False(t, res.CreatedAt().Before(before))
	assert.True(t, res.Either().Equal(either.Second[error](5)))
}

func TestFail(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	res := Fail[int](err)

	assert.False(t, res.IsSuccess())
	assert.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), err)
	assert.Zero(t, res.Result())
	assert.NotEqual(t, uuid.Nil, res.Id())
}

func TestFromEither(t *testing.T) {
	t.Parallel()

	ok := FromEither(either.Second[error]("v"))
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "v", ok.Result())

	failed := FromEither(either.First[error, string](errors.New("bad")))
	assert.True(t, failed.IsFailure())
	assert.EqualError(t, failed.Err(), "bad")
}

func TestResult_UniqueIds(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Success(1).Id(), Success(1).Id())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	e1, e2 := errors.New("a"), errors.New("b")

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{e1}, GetErrors(e1))
	assert.Equal(t, []error{e1, e2}, GetErrors(errors.Join(e1, e2)))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.False(t, IsNil(1))
}
