package session

import "time"

// Role is the account role reported by the backend.
type Role string

const (
	// RoleTeacher manages classes, courses, assignments, and cloud files.
	RoleTeacher Role = "TEACHER"
	// RoleStudent joins classes and submits assignments.
	RoleStudent Role = "STUDENT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// Session is the locally held auth token plus minimal user identity.
//
// The JSON shape matches the record the web front-ends keep in local storage.
type Session struct {
	Token     string `json:"token,omitempty"`
	UserID    int64  `json:"userId,omitempty"`
	Username  string `json:"username,omitempty"`
	Role      Role   `json:"role,omitempty"`
	RealName  string `json:"realName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}

// IsZero reports whether s is the empty session.
func (s Session) IsZero() bool {
	return s == Session{}
}

// Authenticated reports whether s carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Identity returns the user id and role of s. Without a token the stored identity
// is not trusted and ok is false.
func (s Session) Identity() (userID int64, role Role, ok bool) {
	if s.Token == "" || s.UserID == 0 || s.Role == "" {
		return 0, "", false
	}
	return s.UserID, s.Role, true
}

// Expired reports whether the token expiry recorded in s has passed at now.
// Sessions without a recorded expiry never expire locally.
func (s Session) Expired(now time.Time) bool {
	if s.ExpiresAt == 0 {
		return false
	}
	return now.Unix() >= s.ExpiresAt
}

// Active reports whether s has a trusted identity that has not expired at now.
func (s Session) Active(now time.Time) bool {
	_, _, ok := s.Identity()
	return ok && !s.Expired(now)
}

// JoinedClass is one entry of the cached list of classes a student has joined.
type JoinedClass struct {
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	Code      string `json:"code,omitempty"`
	TeacherID int64  `json:"teacherId,omitempty"`
}
