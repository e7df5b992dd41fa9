package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/Saaaaaad3/Plattera/entity"
	"github.com/Saaaaaad3/Plattera/repository"
	"github.com/Saaaaaad3/Plattera/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidMobile = errors.New("invalid mobile number")
	ErrInvalidOTP    = errors.New("invalid otp")
)

// ThrottledError carries the remaining cooldown so the controller can
// tell the user how long to wait.
type ThrottledError struct {
	WaitSeconds int
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("too many requests, retry in %ds", e.WaitSeconds)
}

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// AuthService runs the phone-number OTP login flow: issue a code,
// verify it, hand out a JWT. Codes are stored bcrypt-hashed and the
// issuance rate is throttled per number.
type AuthService struct {
	users    *repository.UserRepository
	otps     *repository.OtpRepository
	throttle *OtpThrottle

	jwtSecret string
	jwtTTL    time.Duration
	otpTTL    time.Duration
	otpLength int
}

func NewAuthService(users *repository.UserRepository, otps *repository.OtpRepository, secret string, jwtTTL, otpTTL time.Duration, otpLength int) *AuthService {
	return &AuthService{
		users:     users,
		otps:      otps,
		throttle:  NewOtpThrottle(),
		jwtSecret: secret,
		jwtTTL:    jwtTTL,
		otpTTL:    otpTTL,
		otpLength: otpLength,
	}
}

// RequestOTP issues a login code for a mobile number, creating the
// user on first sight. Returns whether the user is new.
func (s *AuthService) RequestOTP(mobile string) (bool, error) {
	mobile = strings.TrimSpace(mobile)
	if !mobilePattern.MatchString(mobile) {
		return false, ErrInvalidMobile
	}

	if wait := s.throttle.WaitSeconds(mobile); wait > 0 {
		return false, &ThrottledError{WaitSeconds: wait}
	}

	isNewUser := false
	if _, err := s.users.FindByMobile(mobile); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
		user := &entity.User{
			MobileNumber: mobile,
			Role:         entity.RoleCustomer.String(),
		}
		if err := s.users.Create(user); err != nil {
			return false, err
		}
		isNewUser = true
	}

	code, err := s.generateCode()
	if err != nil {
		return false, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	otp := &entity.OtpCode{
		RequestID:    uuid.NewString(),
		MobileNumber: mobile,
		CodeHash:     string(hash),
		ExpiresAt:    time.Now().Add(s.otpTTL),
	}
	if err := s.otps.Create(otp); err != nil {
		return false, err
	}
	s.throttle.RecordRequest(mobile)

	// no SMS gateway wired; the code goes to the log in dev
	log.Printf("otp for %s (request %s): %s", mobile, otp.RequestID, code)

	return isNewUser, nil
}

// VerifyOTP checks a code against the latest unconsumed issuance for
// the number and returns a signed JWT on success.
func (s *AuthService) VerifyOTP(mobile, code string) (string, error) {
	mobile = strings.TrimSpace(mobile)
	if !mobilePattern.MatchString(mobile) {
		return "", ErrInvalidMobile
	}
	if len(code) != s.otpLength {
		return "", ErrInvalidOTP
	}

	otp, err := s.otps.LatestForMobile(mobile)
	if err != nil {
		return "", ErrInvalidOTP
	}
	if time.Now().After(otp.ExpiresAt) {
		return "", ErrInvalidOTP
	}
	if bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)) != nil {
		return "", ErrInvalidOTP
	}

	if err := s.otps.MarkConsumed(otp.ID); err != nil {
		return "", err
	}
	s.throttle.RecordSuccess(mobile)

	user, err := s.users.FindByMobile(mobile)
	if err != nil {
		return "", err
	}
	return utils.GenerateToken(user.ID, user.Role, mobile, s.jwtSecret, s.jwtTTL)
}

func (s *AuthService) generateCode() (string, error) {
	digits := make([]byte, s.otpLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
