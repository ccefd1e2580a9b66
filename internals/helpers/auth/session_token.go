package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"homework_backend/internals/constants"
)

var ErrInvalidToken = errors.New("invalid token")

// StudentSession is the record a student carries between requests. It holds no
// password; the signature only stops clients from editing it.
type StudentSession struct {
	StudentID     uuid.UUID  `json:"student_id"`
	Name          string     `json:"name"`
	ClassroomID   uuid.UUID  `json:"classroom_id"`
	ClassroomName string     `json:"classroom_name"`
	ClassroomCode string     `json:"classroom_code"`
	ProfileID     *uuid.UUID `json:"profile_id,omitempty"`
}

type TeacherIdentity struct {
	TeacherID uuid.UUID `json:"teacher_id"`
	Email     string    `json:"email"`
}

type TeacherClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type StudentClaims struct {
	Role          string `json:"role"`
	Name          string `json:"name"`
	ClassroomID   string `json:"classroom_id"`
	ClassroomName string `json:"classroom_name"`
	ClassroomCode string `json:"classroom_code"`
	ProfileID     string `json:"profile_id,omitempty"`
	jwt.RegisteredClaims
}

type IssuedToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func IssueTeacherToken(secret string, id TeacherIdentity, ttl time.Duration, now time.Time) (IssuedToken, error) {
	exp := now.Add(ttl)
	claims := TeacherClaims{
		Role:  constants.RoleTeacher,
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.TeacherID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	return sign(secret, claims, exp)
}

func IssueStudentToken(secret string, s StudentSession, ttl time.Duration, now time.Time) (IssuedToken, error) {
	exp := now.Add(ttl)
	claims := StudentClaims{
		Role:          constants.RoleStudent,
		Name:          s.Name,
		ClassroomID:   s.ClassroomID.String(),
		ClassroomName: s.ClassroomName,
		ClassroomCode: s.ClassroomCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.StudentID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	if s.ProfileID != nil {
		claims.ProfileID = s.ProfileID.String()
	}
	return sign(secret, claims, exp)
}

func sign(secret string, claims jwt.Claims, exp time.Time) (IssuedToken, error) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return IssuedToken{}, err
	}
	return IssuedToken{AccessToken: raw, TokenType: "Bearer", ExpiresAt: exp}, nil
}

// ParseToken verifies the signature (HMAC only) and expiry, then returns the role
// together with the decoded identity for that role.
func ParseToken(secret, raw string) (role string, teacher *TeacherIdentity, student *StudentSession, err error) {
	var mc jwt.MapClaims
	tok, err := jwt.ParseWithClaims(raw, &mc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", nil, nil, ErrInvalidToken
	}

	sub, err := uuid.Parse(strClaim(mc, "sub"))
	if err != nil {
		return "", nil, nil, ErrInvalidToken
	}

	switch role = strClaim(mc, "role"); role {
	case constants.RoleTeacher:
		email := strClaim(mc, "email")
		if email == "" {
			return "", nil, nil, ErrInvalidToken
		}
		return role, &TeacherIdentity{TeacherID: sub, Email: email}, nil, nil
	case constants.RoleStudent:
		cid, err := uuid.Parse(strClaim(mc, "classroom_id"))
		if err != nil {
			return "", nil, nil, ErrInvalidToken
		}
		s := &StudentSession{
			StudentID:     sub,
			Name:          strClaim(mc, "name"),
			ClassroomID:   cid,
			ClassroomName: strClaim(mc, "classroom_name"),
			ClassroomCode: strClaim(mc, "classroom_code"),
		}
		if pid, err := uuid.Parse(strClaim(mc, "profile_id")); err == nil {
			s.ProfileID = &pid
		}
		return role, nil, s, nil
	default:
		return "", nil, nil, ErrInvalidToken
	}
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
