package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/bookshelf-api/internal/config"
	"github.com/phrazzld/bookshelf-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuthConfig = config.AuthConfig{
	JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
	TokenLifetimeMinutes: 5,
}

func TestMint(t *testing.T) {
	subject := uuid.New()
	var out bytes.Buffer

	require.NoError(t, mint(context.Background(), &out, testAuthConfig, subject.String()))

	svc, err := auth.NewJWTService(testAuthConfig)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, subject, claims.UserID)
}

func TestMintRejectsInvalidSubject(t *testing.T) {
	var out bytes.Buffer

	err := mint(context.Background(), &out, testAuthConfig, "not-a-uuid")

	assert.Error(t, err)
	assert.Empty(t, out.String())
}
