package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysUser{},
	&SysUserLog{},
	// Inventory
	&Product{},
}
