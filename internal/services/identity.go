package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/securebank/internal/models"
	"github.com/example/securebank/internal/utils"
)

var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// IdentityService manages user registration, authentication and the
// digital-token verification gate used by the workflow engines.
type IdentityService struct {
	db    *gorm.DB
	clock Clock
}

// NewIdentityService constructs an IdentityService.
func NewIdentityService(db *gorm.DB, clock Clock) *IdentityService {
	return &IdentityService{db: db, clock: clock}
}

// RegisterInput carries the registration form fields. DateOfBirth is
// expected in YYYY-MM-DD form.
type RegisterInput struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	PANNumber   string `json:"pan_number"`
}

// Register validates the candidate, generates a unique digital token
// and persists the user with a bcrypt credential hash. The token is
// returned on the user record and displayed exactly once.
func (s *IdentityService) Register(in RegisterInput) (*models.User, error) {
	required := []struct{ field, value string }{
		{"username", in.Username},
		{"password", in.Password},
		{"full_name", in.FullName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"date_of_birth", in.DateOfBirth},
		{"gender", in.Gender},
		{"address", in.Address},
		{"pan_number", in.PANNumber},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, NewValidationError(r.field, "is required")
		}
	}

	pan := strings.ToUpper(strings.TrimSpace(in.PANNumber))
	if !panPattern.MatchString(pan) {
		return nil, NewValidationError("pan_number", "invalid PAN number format")
	}

	birthDate, err := time.Parse("2006-01-02", in.DateOfBirth)
	if err != nil {
		return nil, NewValidationError("date_of_birth", "invalid date format, expected YYYY-MM-DD")
	}

	age := ageAt(birthDate, s.clock.Now())
	if age < 18 {
		return nil, NewValidationError("date_of_birth", "you must be at least 18 years old to register")
	}
	if age > 100 {
		return nil, NewValidationError("date_of_birth", "please enter a valid date of birth")
	}

	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	for _, probe := range []struct{ field, column, value string }{
		{"username", "username", username},
		{"email", "email", email},
		{"pan_number", "pan_number", pan},
	} {
		taken, err := s.columnTaken(probe.column, probe.value)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &ConflictError{Field: probe.field}
		}
	}

	token, err := utils.GenerateUnique(utils.NewDigitalToken, func(candidate string) (bool, error) {
		return s.columnTaken("digital_token", candidate)
	})
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		DigitalToken:  token,
		Username:      username,
		PasswordHash:  passwordHash,
		FullName:      strings.TrimSpace(in.FullName),
		Email:         email,
		Phone:         strings.TrimSpace(in.Phone),
		DateOfBirth:   birthDate,
		Age:           age,
		Gender:        strings.ToLower(in.Gender),
		Address:       strings.TrimSpace(in.Address),
		PANNumber:     pan,
		FaceData:      "verified",
		RetinaData:    "verified",
		AccountStatus: "active",
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies the credentials and stamps last_login. Unknown
// username and wrong password produce the same error.
func (s *IdentityService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	now := s.clock.Now()
	user.LastLogin = &now
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUser loads a user by id.
func (s *IdentityService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyToken reports whether the submitted digital token matches the
// user's stored token. Case-insensitive, no mutation.
func (s *IdentityService) VerifyToken(user *models.User, submitted string) bool {
	return TokenMatches(user, submitted)
}

// TokenMatches is the shared token-verification predicate used as a
// precondition gate before state-changing financial actions.
func TokenMatches(user *models.User, submitted string) bool {
	if user == nil || user.DigitalToken == "" {
		return false
	}
	return strings.ToUpper(strings.TrimSpace(submitted)) == user.DigitalToken
}

func (s *IdentityService) columnTaken(column, value string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
