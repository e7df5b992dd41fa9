package entity

import "testing"

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"RESTOWNER", RoleRestOwner},
		{"RestOwner", RoleRestOwner},
		{"restowner", RoleRestOwner},
		{" RestOwner ", RoleRestOwner},
		{"CUSTOMER", RoleCustomer},
		{"Customer", RoleCustomer},
		{"admin", RoleNone},
		{"", RoleNone},
	}
	for _, tt := range tests {
		if got := NormalizeRole(tt.in); got != tt.want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
