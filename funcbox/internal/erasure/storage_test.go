package erasure_test

import (
	"testing"

	"github.com/on-the-ground/func_ive_go/funcbox/internal/erasure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct{ n int }

func invokeStep(obj any, a int) (int, error) {
	s := obj.(*step)
	s.n += a
	return s.n, nil
}

type pinned struct {
	erasure.NoCopy
	n int
}

func invokePinned(obj any, a int) (int, error) {
	return obj.(*pinned).n + a, nil
}

type shared struct{ n *int }

func (s *shared) Clone() shared {
	n := *s.n
	return shared{n: &n}
}

func invokeShared(obj any, a int) (int, error) {
	s := obj.(*shared)
	*s.n += a
	return *s.n, nil
}

type closer struct{ closed *bool }

func (c closer) Close() error {
	*c.closed = true
	return nil
}

func emptyUnary() *erasure.Methods[unary] {
	return erasure.EmptyTable(unary(failEmpty))
}

func call(t *testing.T, s *erasure.Storage[unary], a int) int {
	t.Helper()
	res, err := s.Table(emptyUnary()).Invoke(s.Obj(), a)
	require.NoError(t, err)
	return res
}

func TestStorage_ZeroValueIsEmpty(t *testing.T) {
	var s erasure.Storage[unary]

	assert.False(t, s.Valid(emptyUnary()))
	assert.Same(t, emptyUnary(), s.Table(emptyUnary()))
	assert.Nil(t, s.Obj())
}

func TestStorage_AbsorbOwnsCopy(t *testing.T) {
	val := step{n: 1}
	s := erasure.Absorb(val, erasure.TableOf[step](unary(invokeStep)))

	assert.True(t, s.Valid(emptyUnary()))
	assert.Equal(t, 3, call(t, &s, 2))
	assert.Equal(t, 1, val.n)
}

func TestStorage_CopyIsIndependent(t *testing.T) {
	s := erasure.Absorb(step{}, erasure.TableOf[step](unary(invokeStep)))
	call(t, &s, 1)

	dup, err := s.Copy(emptyUnary())
	require.NoError(t, err)

	assert.Equal(t, 11, call(t, &dup, 10))
	assert.Equal(t, 2, call(t, &s, 1))
}

func TestStorage_CopyUsesCloner(t *testing.T) {
	s := erasure.Absorb(shared{n: new(int)}, erasure.TableOf[shared](unary(invokeShared)))

	dup, err := s.Copy(emptyUnary())
	require.NoError(t, err)

	assert.Equal(t, 5, call(t, &dup, 5))
	assert.Equal(t, 1, call(t, &s, 1))
}

func TestStorage_CopyOfMoveOnlyFails(t *testing.T) {
	s := erasure.Absorb(pinned{n: 7}, erasure.TableOf[pinned](unary(invokePinned)))

	dup, err := s.Copy(emptyUnary())
	assert.ErrorIs(t, err, erasure.ErrUnsupportedCopy)
	assert.Contains(t, err.Error(), "erasure_test.pinned")
	assert.False(t, dup.Valid(emptyUnary()))

	var dst erasure.Storage[unary]
	assert.ErrorIs(t, dst.Assign(&s, emptyUnary()), erasure.ErrUnsupportedCopy)
	assert.True(t, s.Valid(emptyUnary()))
	assert.Equal(t, 8, call(t, &s, 1))
}

func TestStorage_CopyOfEmptyIsEmpty(t *testing.T) {
	var s erasure.Storage[unary]

	dup, err := s.Copy(emptyUnary())
	require.NoError(t, err)
	assert.False(t, dup.Valid(emptyUnary()))
}

func TestStorage_TakeAndMoveFrom(t *testing.T) {
	s := erasure.Absorb(step{n: 1}, erasure.TableOf[step](unary(invokeStep)))

	moved := s.Take(emptyUnary())
	assert.False(t, s.Valid(emptyUnary()))
	assert.Same(t, emptyUnary(), s.Table(emptyUnary()))
	assert.Equal(t, 2, call(t, &moved, 1))

	s.MoveFrom(&moved, emptyUnary())
	assert.False(t, moved.Valid(emptyUnary()))
	assert.Equal(t, 3, call(t, &s, 1))

	s.MoveFrom(&s, emptyUnary())
	assert.Equal(t, 4, call(t, &s, 1))
}

func TestStorage_ReleaseClosesPayload(t *testing.T) {
	closed := false
	s := erasure.Absorb(closer{closed: &closed}, erasure.TableOf[closer](unary(failEmpty)))

	s.Release(emptyUnary())

	assert.True(t, closed)
	assert.False(t, s.Valid(emptyUnary()))
	assert.Nil(t, s.Obj())
}

func TestTarget(t *testing.T) {
	s := erasure.Absorb(step{n: 5}, erasure.TableOf[step](unary(invokeStep)))

	got, ok := erasure.Target[step](s.View(emptyUnary()))
	require.True(t, ok)
	assert.Equal(t, 5, got.n)

	_, ok = erasure.Target[pinned](s.View(emptyUnary()))
	assert.False(t, ok)

	s.Release(emptyUnary())
	_, ok = erasure.Target[step](s.View(emptyUnary()))
	assert.False(t, ok)
	assert.Nil(t, s.View(emptyUnary()).Held())
}
