package constants

// Account roles carried in the JWT role claim
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Form gate types
const (
	FormTypeSamuhLagan    = "samuhLagan"
	FormTypeStudentAwards = "studentAwards"
)

// Form-name aliases used by the public visibility endpoints
var FormNameToType = map[string]string{
	"registrationForm": FormTypeSamuhLagan,
	"studentAwardForm": FormTypeStudentAwards,
}

// ValidRoles returns all assignable account roles
func ValidRoles() []string {
	return []string{RoleUser, RoleAdmin}
}

// IsValidRole reports whether role is an assignable account role
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// IsValidFormType reports whether t names a gated form
func IsValidFormType(t string) bool {
	return t == FormTypeSamuhLagan || t == FormTypeStudentAwards
}
