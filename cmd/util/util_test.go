package util

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestWrapString(t *testing.T) {
	wrapped := WrapString(strings.Repeat("word ", 30))
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), Wrap)
	}
	assert.Equal(t, "short text", WrapString("  short   text "))
}

func TestGetSourceDirectories(t *testing.T) {
	src, err := GetSource(context.Background(), &Config{Source: "a, b"}, noEnv)
	require.NoError(t, err)
	assert.Contains(t, src.String(), "a")
	assert.Contains(t, src.String(), "b")
}

func TestGetSourceInvalid(t *testing.T) {
	_, err := GetSource(context.Background(), &Config{Source: "ftp://host/dir"}, noEnv)
	assert.ErrorContains(t, err, "invalid source scheme")

	_, err = GetSource(context.Background(), &Config{Source: "azblob://bundles/app"}, noEnv)
	assert.ErrorContains(t, err, envVarAzureConnection)
}

func TestGetSourceAzureBlob(t *testing.T) {
	env := map[string]string{
		envVarAzureConnection: "DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://127.0.0.1:10000/devstoreaccount1;",
	}
	src, err := GetSource(context.Background(), &Config{Source: "azblob://bundles/app"}, func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Contains(t, src.String(), "bundles")
}

func TestAzureBlobEndpoint(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:10000/devstoreaccount1",
		azureBlobEndpoint("AccountName=devstoreaccount1;BlobEndpoint=http://127.0.0.1:10000/devstoreaccount1"))
	assert.Equal(t, "https://acct.blob.core.windows.net",
		azureBlobEndpoint("DefaultEndpointsProtocol=https;AccountName=acct;AccountKey=a2V5"))
	assert.Equal(t, "https://acct.blob.core.windows.net",
		azureBlobEndpoint("AccountName=acct"))
}

func TestConfigString(t *testing.T) {
	s := (&Config{Source: "s3://bucket/prefix", Format: "yaml", LogLevel: "debug"}).String()
	assert.Contains(t, s, "BUNDLES")
	assert.Contains(t, s, "  Source                : s3://bucket/prefix\n")
	assert.Contains(t, s, "(base bundle only)")
	assert.Contains(t, s, "LOGGING")
}
