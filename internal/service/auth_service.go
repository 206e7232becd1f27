package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"hostelia/internal/db"
	"hostelia/internal/errors"
	"hostelia/internal/repository"
)

const (
	RoleHost  = "host"
	RoleGuest = "guest"

	// Sessions last 15 days; mobile clients refresh by logging in again.
	tokenTTL = 15 * 24 * time.Hour

	googleUserInfoURL = "https://www.googleapis.com/userinfo/v2/me"
)

type AuthResult struct {
	User  *db.User
	Token string
}

type AuthService struct {
	users      repository.UserRepository
	httpClient *http.Client
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Signup registers an email+password user (dev and backoffice logins).
func (s *AuthService) Signup(name, email, password, role string) (*AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.NewValidationError("name, email and password are required")
	}
	if role != RoleHost && role != RoleGuest {
		return nil, errors.NewValidationError("role must be host or guest")
	}

	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &db.User{
		Name:         name,
		Email:        email,
		PasswordHash: sql.NullString{String: string(hash), Valid: true},
		Role:         role,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return s.result(user)
}

func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.PasswordHash.Valid {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(password)); err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	return s.returningResult(user)
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin exchanges a Google access token for the user's profile
// and signs the user in, creating the account on first login.
func (s *AuthService) GoogleLogin(accessToken, role string) (*AuthResult, error) {
	if accessToken == "" {
		return nil, errors.NewValidationError("access token is required")
	}
	info, err := s.fetchGoogleUserInfo(accessToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("could not verify Google token")
	}
	return s.socialLogin(info.Name, info.Email, role, func(u *db.User) {
		u.GoogleID = sql.NullString{String: info.ID, Valid: true}
	}, func() (*db.User, error) {
		return s.users.GetByGoogleID(info.ID)
	})
}

// AppleLogin verifies an Apple identity token against Apple's signing
// keys and signs the user in, creating the account on first login.
// Apple only provides the name on the first authorization, so it is
// passed through from the client.
func (s *AuthService) AppleLogin(identityToken, name, role string) (*AuthResult, error) {
	if identityToken == "" {
		return nil, errors.NewValidationError("identity token is required")
	}
	claims, err := verifyAppleIdentityToken(s.httpClient, identityToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("could not verify Apple token")
	}
	if name == "" {
		name = "Apple User"
	}
	return s.socialLogin(name, claims.Email, role, func(u *db.User) {
		u.AppleID = sql.NullString{String: claims.Subject, Valid: true}
	}, func() (*db.User, error) {
		return s.users.GetByAppleID(claims.Subject)
	})
}

func (s *AuthService) socialLogin(name, email, role string, setID func(*db.User), lookup func() (*db.User, error)) (*AuthResult, error) {
	user, err := lookup()
	if err != nil {
		return nil, err
	}
	if user != nil {
		return s.returningResult(user)
	}

	if role != RoleHost {
		role = RoleGuest
	}
	user = &db.User{Name: name, Email: email, Role: role}
	setID(user)
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return s.result(user)
}

func (s *AuthService) fetchGoogleUserInfo(accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.ID == "" {
		return nil, fmt.Errorf("google userinfo response missing id")
	}
	return &info, nil
}

func (s *AuthService) result(user *db.User) (*AuthResult, error) {
	token, err := IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) returningResult(user *db.User) (*AuthResult, error) {
	if user.IsNewUser {
		if err := s.users.MarkReturning(user.ID); err != nil {
			return nil, err
		}
		user.IsNewUser = false
	}
	return s.result(user)
}

// IssueToken signs an HS256 JWT carrying the user's id and role.
func IssueToken(user *db.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
