package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
)

const testSecret = "test-secret"

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	svc := NewAuthService(mockUserRepo, testSecret, 30*time.Minute)

	user, err := svc.Register("alice@example.com", "Alice", "secret1", "secret2")

	assert.Nil(t, user)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	existing := &models.User{ID: 1, Email: "alice@example.com"}
	mockUserRepo.On("GetByEmail", "alice@example.com").Return(existing, nil)

	svc := NewAuthService(mockUserRepo, testSecret, 30*time.Minute)
	user, err := svc.Register("alice@example.com", "Alice", "secret", "secret")

	assert.Nil(t, user)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	svc := NewAuthService(mockUserRepo, testSecret, 30*time.Minute)
	user, err := svc.Register("alice@example.com", "Alice", "secret", "secret")

	assert.NoError(t, err)
	assert.Equal(t, models.RoleConsumer, user.Role)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
	mockUserRepo.AssertExpectations(t)
}

func TestLogin_FailureShapeIsUniform(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	known := &models.User{ID: 1, Email: "alice@example.com", PasswordHash: hashFor(t, "right")}
	mockUserRepo.On("GetByEmail", "alice@example.com").Return(known, nil)
	mockUserRepo.On("GetByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(mockUserRepo, testSecret, 30*time.Minute)

	_, wrongPassword := svc.Login("alice@example.com", "wrong")
	_, unknownEmail := svc.Login("ghost@example.com", "whatever")

	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(wrongPassword))
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(unknownEmail))
	// Identical message regardless of which check failed.
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	user := &models.User{ID: 1, Email: "alice@example.com", PasswordHash: hashFor(t, "secret"), Role: models.RoleConsumer}
	mockUserRepo.On("GetByEmail", "alice@example.com").Return(user, nil)

	svc := NewAuthService(mockUserRepo, testSecret, 30*time.Minute)

	token, err := svc.Login("alice@example.com", "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	resolved, err := svc.ResolveUser(token)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, resolved.Email)
}

func TestResolveUser_ExpiredToken(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	user := &models.User{ID: 1, Email: "alice@example.com", PasswordHash: hashFor(t, "secret")}
	mockUserRepo.On("GetByEmail", "alice@example.com").Return(user, nil)

	// Negative TTL issues an already-expired token.
	svc := NewAuthService(mockUserRepo, testSecret, -time.Minute)

	token, err := svc.Login("alice@example.com", "secret")
	assert.NoError(t, err)

	resolved, err := svc.ResolveUser(token)
	assert.Nil(t, resolved)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
}

func TestResolveUser_GarbageToken(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	svc := NewAuthService(mockUserRepo, testSecret, 30*time.Minute)

	resolved, err := svc.ResolveUser("not-a-token")

	assert.Nil(t, resolved)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
}

func TestResolveUser_SubjectNoLongerExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	user := &models.User{ID: 1, Email: "alice@example.com", PasswordHash: hashFor(t, "secret")}
	mockUserRepo.On("GetByEmail", "alice@example.com").Return(user, nil).Once()

	svc := NewAuthService(mockUserRepo, testSecret, 30*time.Minute)
	token, err := svc.Login("alice@example.com", "secret")
	assert.NoError(t, err)

	mockUserRepo.On("GetByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)

	resolved, err := svc.ResolveUser(token)
	assert.Nil(t, resolved)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
}

func TestRequireAdmin(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), testSecret, 30*time.Minute)

	consumer := &models.User{ID: 1, Role: models.RoleConsumer}
	err := svc.RequireAdmin(consumer)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	admin := &models.User{ID: 2, Role: models.RoleAdmin}
	assert.NoError(t, svc.RequireAdmin(admin))
}
