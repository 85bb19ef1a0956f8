package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	hash, err := b.Hash("pw123456")
	require.NoError(t, err)
	assert.NotContains(t, string(hash), "pw123456")

	require.NoError(t, b.Compare(hash, "pw123456"))
	require.ErrorIs(t, b.Compare(hash, "wrong"), ErrMismatch)
}

func TestBcrypt_SaltedPerHash(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	h1, err := b.Hash("same")
	require.NoError(t, err)
	h2, err := b.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestBcrypt_CostIsApplied(t *testing.T) {
	hash, err := NewBcrypt(10).Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost(hash)
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestNewBcrypt_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcrypt(99).cost)
}

func TestBcrypt_Compare_MalformedHash(t *testing.T) {
	err := NewBcrypt(bcrypt.MinCost).Compare([]byte("not-a-hash"), "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}
