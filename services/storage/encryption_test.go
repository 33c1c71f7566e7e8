package storage

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptFileRoundTrip(t *testing.T) {
	plaintext := []byte("bar certificate scan bytes")
	src := filepath.Join(t.TempDir(), "certificate.pdf")
	require.NoError(t, os.WriteFile(src, plaintext, 0644))

	encPath, err := encryptFile(src, "document-key")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(encPath) })

	ciphertext, err := os.ReadFile(encPath)
	require.NoError(t, err)
	assert.NotContains(t, string(ciphertext), string(plaintext))

	keyHash := sha256.Sum256([]byte("document-key"))
	block, err := aes.NewCipher(keyHash[:])
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	require.Greater(t, len(ciphertext), gcm.NonceSize())
	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	decrypted, err := gcm.Open(nil, nonce, sealed, nil)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncryptFileWrongKeyFailsToDecrypt(t *testing.T) {
	src := filepath.Join(t.TempDir(), "id.jpg")
	require.NoError(t, os.WriteFile(src, []byte("national id scan"), 0644))

	encPath, err := encryptFile(src, "document-key")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(encPath) })

	ciphertext, err := os.ReadFile(encPath)
	require.NoError(t, err)

	keyHash := sha256.Sum256([]byte("wrong-key"))
	block, err := aes.NewCipher(keyHash[:])
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	_, err = gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
	assert.Error(t, err)
}

func TestEncryptFileMissingSource(t *testing.T) {
	_, err := encryptFile(filepath.Join(t.TempDir(), "absent.pdf"), "document-key")
	assert.Error(t, err)
}
