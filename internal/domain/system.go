package domain

import (
	"time"
)

// Role is the authorization tier assigned to a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Permission names a capability a role may hold.
type Permission string

const (
	PermManageProducts Permission = "products.manage"
	PermExportReports  Permission = "reports.export"
)

var rolePermissions = map[Role]map[Permission]bool{
	RoleAdmin: {
		PermManageProducts: true,
		PermExportReports:  true,
	},
	RoleStaff: {},
}

// Valid reports whether the role is a known tier.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Can reports whether the role holds the given permission.
func (r Role) Can(p Permission) bool {
	return rolePermissions[r][p]
}

type SysUser struct {
	ID        int64     `json:"id,string" form:"id"`
	Username  string    `gorm:"uniqueIndex;size:64" json:"username" form:"username"`
	Password  string    `json:"-" form:"-"`
	Realname  string    `json:"realname" form:"realname"`
	Email     string    `json:"email" form:"email"`
	Role      Role      `gorm:"size:16;index" json:"role" form:"role"`
	Status    string    `gorm:"size:16" json:"status" form:"status"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SysUser) TableName() string {
	return "sys_user"
}

// SysUserLog records a user operation for auditing.
type SysUserLog struct {
	ID        int64     `json:"id,string"`
	Username  string    `gorm:"index" json:"username"`
	UserIp    string    `json:"user_ip"`
	OptAction string    `json:"opt_action"`
	OptDesc   string    `json:"opt_desc"`
	OptTime   time.Time `json:"opt_time"`
}

// TableName Specify table name
func (SysUserLog) TableName() string {
	return "sys_user_log"
}

type SysConfig struct {
	ID        int64     `json:"id,string" form:"id"`
	Sort      int       `json:"sort" form:"sort"`
	Type      string    `gorm:"index" json:"type" form:"type"`
	Name      string    `gorm:"index" json:"name" form:"name"`
	Value     string    `json:"value" form:"value"`
	Remark    string    `json:"remark" form:"remark"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SysConfig) TableName() string {
	return "sys_config"
}
