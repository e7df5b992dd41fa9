package entity

import "strings"

// Role is the closed set of capabilities a token can carry. Anything
// the backend sends that is not recognized maps to RoleNone:
// authenticated but capability-less.
type Role string

const (
	RoleRestOwner Role = "RestOwner"
	RoleCustomer  Role = "Customer"
	RoleNone      Role = ""
)

// NormalizeRole folds backend role spellings ("RESTOWNER", "restowner",
// "RestOwner") into the closed enumeration. Call it once at the token
// boundary; never compare raw role strings elsewhere.
func NormalizeRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RESTOWNER":
		return RoleRestOwner
	case "CUSTOMER":
		return RoleCustomer
	default:
		return RoleNone
	}
}

func (r Role) String() string { return string(r) }
