package vault

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	secret := make([]byte, SecretSize)
	_, err := io.ReadFull(rand.Reader, secret)
	require.NoError(t, err)

	record, err := encryptRecord(secret, "correct horse battery staple")
	require.NoError(t, err)

	require.Len(t, record.Salt, SaltSize)
	require.Len(t, record.Nonce, NonceSize)
	require.Len(t, record.Ciphertext, SecretSize+TagSize)

	key := deriveKey("correct horse battery staple", record.Salt)
	plaintext, err := decryptSecret(key, record.Nonce, record.Ciphertext)
	require.NoError(t, err)
	assert.Equal(t, secret, plaintext)
}

func TestDecryptWrongPassword(t *testing.T) {
	secret := make([]byte, SecretSize)
	_, err := io.ReadFull(rand.Reader, secret)
	require.NoError(t, err)

	record, err := encryptRecord(secret, "password-one")
	require.NoError(t, err)

	key := deriveKey("password-two", record.Salt)
	plaintext, err := decryptSecret(key, record.Nonce, record.Ciphertext)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCrypto))
	assert.Nil(t, plaintext)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	secret := make([]byte, SecretSize)
	_, err := io.ReadFull(rand.Reader, secret)
	require.NoError(t, err)

	record, err := encryptRecord(secret, "password")
	require.NoError(t, err)

	record.Ciphertext[0] ^= 0x01

	key := deriveKey("password", record.Salt)
	plaintext, err := decryptSecret(key, record.Nonce, record.Ciphertext)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCrypto))
	assert.Nil(t, plaintext)
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0xab}, SaltSize)

	first := deriveKey("password", salt)
	second := deriveKey("password", salt)
	assert.Equal(t, first, second)
	assert.Len(t, first, 32)

	other := deriveKey("other password", salt)
	assert.NotEqual(t, first, other)
}

func TestCodecRoundTrip(t *testing.T) {
	record := &EncryptedKeyRecord{
		Salt:       bytes.Repeat([]byte{0x01}, SaltSize),
		Nonce:      bytes.Repeat([]byte{0x02}, NonceSize),
		Ciphertext: bytes.Repeat([]byte{0x03}, SecretSize+TagSize),
	}

	data, err := serializeRecord(record)
	require.NoError(t, err)

	parsed, err := deserializeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record, parsed)
}

func TestCodecMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not a json document"},
		{"missing fields", `{}`},
		{"invalid salt base64", `{"salt":"!!","nonce":"AAAAAAAAAAAAAAAA","ciphertext":"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"}`},
		{"short salt", `{"salt":"AAAA","nonce":"AAAAAAAAAAAAAAAA","ciphertext":"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"}`},
		{"ciphertext shorter than tag", `{"salt":"AAAAAAAAAAAAAAAAAAAAAA==","nonce":"AAAAAAAAAAAAAAAA","ciphertext":"AAAA"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := deserializeRecord([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFormat))
			assert.Nil(t, parsed)
		})
	}
}
