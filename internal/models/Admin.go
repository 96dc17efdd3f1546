package models

import "gorm.io/gorm"

// Administrative roles. At most one admin row may hold RoleSuperAdmin.
const (
	RoleSuperAdmin   = "superadmin"
	RoleAdmin        = "admin"
	RoleClusterAdmin = "clusteradmin"
	RoleBursaryAdmin = "bursaryadmin"

	// RoleCitizen is the token role for citizen accounts; it is not stored
	// in the admins table.
	RoleCitizen = "citizen"
)

// AdminRoles lists every role allowed through the administrative gate.
var AdminRoles = []string{RoleSuperAdmin, RoleAdmin, RoleClusterAdmin, RoleBursaryAdmin}

type Admin struct {
	gorm.Model
	Username     string `json:"username" gorm:"unique"`
	PasswordHash string `json:"-"`
	AdminRole    string `json:"admin_role"`
}
