package models

import "stend/internal/schema"

// User — пользователь сервера. Роли генерируются вложенной сущностью.
type User struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email,omitempty"`
	Roles    *Roles `json:"roles,omitempty"`
}

func (u *User) Blueprint() *schema.Blueprint { return UserBlueprint }

func (u *User) Locator() string { return "username:" + u.Username }

var UserBlueprint = &schema.Blueprint{
	Type: "User",
	New:  func() schema.Model { return &User{} },
	Fields: []schema.FieldSpec{
		{
			Name: "username", Policy: schema.RandomBound, Kind: schema.KindString,
			Assign: assignString("User", "username", func(m schema.Model, s string) { m.(*User).Username = s }),
		},
		{
			Name: "password", Policy: schema.RandomBound, Kind: schema.KindString,
			Assign: assignString("User", "password", func(m schema.Model, s string) { m.(*User).Password = s }),
		},
		{
			Name: "email", Policy: schema.Skip, Kind: schema.KindString,
			Assign: assignString("User", "email", func(m schema.Model, s string) { m.(*User).Email = s }),
		},
		{
			Name: "roles", Kind: schema.KindModel, Elem: RolesBlueprint,
			Assign: func(m schema.Model, v any) error {
				r, ok := v.(*Roles)
				if !ok {
					return schema.Mismatch("User", "roles", "*Roles", v)
				}
				m.(*User).Roles = r
				return nil
			},
		},
	},
}

// Roles — обёртка над списком ролей.
type Roles struct {
	Role []*Role `json:"role,omitempty"`
}

func (r *Roles) Blueprint() *schema.Blueprint { return RolesBlueprint }

var RolesBlueprint = &schema.Blueprint{
	Type: "Roles",
	New:  func() schema.Model { return &Roles{} },
	Fields: []schema.FieldSpec{
		{
			Name: "role", Kind: schema.KindModelList, Elem: RoleBlueprint,
			Assign: func(m schema.Model, v any) error {
				role, ok := v.(*Role)
				if !ok {
					return schema.Mismatch("Roles", "role", "*Role", v)
				}
				m.(*Roles).Role = []*Role{role}
				return nil
			},
		},
	},
}

// Role — одна роль. Код роли должен существовать в справочнике
// reference (см. reference.DefaultCatalog).
type Role struct {
	RoleID string `json:"roleId,omitempty"`
	Scope  string `json:"scope,omitempty"`
}

func (r *Role) Blueprint() *schema.Blueprint { return RoleBlueprint }

var RoleBlueprint = &schema.Blueprint{
	Type: "Role",
	New:  func() schema.Model { return &Role{RoleID: "SYSTEM_ADMIN", Scope: "g"} },
	Fields: []schema.FieldSpec{
		{
			Name: "roleId", Policy: schema.ParameterBound, Kind: schema.KindString,
			Assign: assignString("Role", "roleId", func(m schema.Model, s string) { m.(*Role).RoleID = s }),
		},
		{
			Name: "scope", Policy: schema.Skip, Kind: schema.KindString,
			Assign: assignString("Role", "scope", func(m schema.Model, s string) { m.(*Role).Scope = s }),
		},
	},
}
