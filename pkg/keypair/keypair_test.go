package keypair

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payer.json")

	generated := Generate()
	require.NoError(t, Save(path, generated, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, generated.PublicKey, loaded.PublicKey)
	assert.Equal(t, generated.PrivateKey, loaded.PrivateKey)
}

func TestSave_NoOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payer.json")

	first := Generate()
	require.NoError(t, Save(path, first, false))

	err := Save(path, Generate(), false)
	assert.Equal(t, ErrKeypairExists, err)

	// Force overwrites
	second := Generate()
	require.NoError(t, Save(path, second, true))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, second.PublicKey, loaded.PublicKey)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	for name, contents := range map[string]string{
		"not_json":    "hello",
		"wrong_size":  "[1,2,3]",
		"out_of_band": "[300" + repeat(",300", 63) + "]",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidKeypair)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFromBase58(t *testing.T) {
	generated := Generate()
	encoded := base58.Encode(generated.PrivateKey)

	loaded, err := FromBase58(encoded)
	require.NoError(t, err)
	assert.Equal(t, generated.PublicKey, loaded.PublicKey)

	_, err = FromBase58("not-base58-0OIl")
	assert.ErrorIs(t, err, ErrInvalidKeypair)

	_, err = FromBase58(base58.Encode([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, ErrInvalidKeypair)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
