package service_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jaewoo-dev/instalite/internal/repository/postgres"
	"github.com/jaewoo-dev/instalite/internal/service"
	"github.com/jaewoo-dev/instalite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Token issue/verify is a pure function of the secret and the clock, so these
// tests run without a database.
func TestAuthService_TokenRoundTrip(t *testing.T) {
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(nil, cfg)

	token, err := authService.IssueToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestAuthService_ValidateToken(t *testing.T) {
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(nil, cfg)

	signedWith := func(secret string, expiresAt time.Time) string {
		claims := jwt.MapClaims{
			"sub": strconv.Itoa(7),
			"iat": time.Now().Add(-2 * time.Hour).Unix(),
			"exp": expiresAt.Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "valid token",
			token:   signedWith(cfg.JWTSecret, time.Now().Add(time.Hour)),
			wantErr: nil,
		},
		{
			name:    "expired token",
			token:   signedWith(cfg.JWTSecret, time.Now().Add(-time.Minute)),
			wantErr: service.ErrTokenExpired,
		},
		{
			name:    "wrong signing secret",
			token:   signedWith("some-other-secret", time.Now().Add(time.Hour)),
			wantErr: service.ErrTokenInvalid,
		},
		{
			name:    "garbage token",
			token:   "not-a-jwt",
			wantErr: service.ErrTokenMalformed,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: service.ErrTokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := authService.ValidateToken(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(7), userID)
		})
	}
}

func TestAuthService_TokenExpiryIsOneHour(t *testing.T) {
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(nil, cfg)

	before := time.Now()
	tokenString, err := authService.IssueToken(1)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)

	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)

	assert.WithinDuration(t, before.Add(time.Hour), exp.Time, 5*time.Second)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, err := authService.Register(ctx, service.RegisterInput{
		Username: "roundtrip",
		Email:    "roundtrip@example.com",
		Password: "secretpassword",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	token, err := authService.Login(ctx, service.LoginInput{
		Email:    "roundtrip@example.com",
		Password: "secretpassword",
	})
	require.NoError(t, err)

	userID, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, testutil.TestConfig())
	ctx := context.Background()

	input := service.RegisterInput{
		Username: "original",
		Email:    "original@example.com",
		Password: "password123",
	}

	_, err := authService.Register(ctx, input)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input service.RegisterInput
	}{
		{
			name: "duplicate username",
			input: service.RegisterInput{
				Username: "original",
				Email:    "other@example.com",
				Password: "password123",
			},
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Username: "otheruser",
				Email:    "original@example.com",
				Password: "password123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authService.Register(ctx, tt.input)
			assert.ErrorIs(t, err, service.ErrUserExists)
		})
	}
}

// Login failures must be indistinguishable between an unknown email and a
// wrong password.
func TestAuthService_Login_Indistinguishable(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, testutil.TestConfig())
	ctx := context.Background()

	testutil.NewUserBuilder().
		WithEmail("known@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	_, wrongPassErr := authService.Login(ctx, service.LoginInput{
		Email:    "known@example.com",
		Password: "wrongpassword",
	})
	_, unknownEmailErr := authService.Login(ctx, service.LoginInput{
		Email:    "nobody@example.com",
		Password: "anypassword",
	})

	assert.ErrorIs(t, wrongPassErr, service.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmailErr, service.ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownEmailErr.Error())
}
