// file: model/credential_test.go

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bank-ledger/common"
)

func TestCredentialRoundTrip(t *testing.T) {
	credential, err := NewCredential("123456")
	require.NoError(t, err)

	assert.Len(t, credential.Salt, 16)
	assert.Len(t, credential.Hash, 32)

	ok, err := credential.Verify("123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = credential.Verify("654321")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewCredentialRejectsMalformedPins(t *testing.T) {
	for _, pin := range []string{"", "12345", "1234567", "12a456", "12 456", "１２３４５６"} {
		_, err := NewCredential(pin)
		assert.ErrorIs(t, err, common.ErrInvalidPin, "pin %q", pin)
	}
}

func TestCredentialSaltsAreUnique(t *testing.T) {
	first, err := NewCredential("123456")
	require.NoError(t, err)
	second, err := NewCredential("123456")
	require.NoError(t, err)

	// Two accounts with the same PIN must not share salt or derived hash.
	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.Hash, second.Hash)
}

func TestCredentialVerifyRejectsCorruptData(t *testing.T) {
	credential, err := NewCredential("123456")
	require.NoError(t, err)

	corrupt := Credential{Salt: credential.Salt[:8], Hash: credential.Hash}
	_, err = corrupt.Verify("123456")
	assert.ErrorIs(t, err, common.ErrCorruptCredential)

	corrupt = Credential{Salt: credential.Salt, Hash: nil}
	_, err = corrupt.Verify("123456")
	assert.ErrorIs(t, err, common.ErrCorruptCredential)
}
