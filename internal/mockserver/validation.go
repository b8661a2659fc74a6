package mockserver

import (
	"strings"

	"stend/internal/reference"
)

type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Коды ошибок, которыми будем пользоваться
const (
	ErrRequired        = "required"
	ErrUniqueViolation = "unique_violation"
	ErrRefNotFound     = "ref_not_found"
	ErrRoleInvalid     = "role_invalid"
	ErrNotFound        = "not_found"
)

func ferr(code, field, message string) FieldError {
	return FieldError{Code: code, Field: field, Message: message}
}

// validateRoles проверяет roles.role[].roleId по справочнику.
func validateRoles(roles reference.RoleDirectory, obj map[string]interface{}) []FieldError {
	var errs []FieldError

	rolesObj, ok := obj["roles"].(map[string]interface{})
	if !ok {
		return nil // роли не переданы — не ошибка
	}
	items, ok := rolesObj["role"].([]interface{})
	if !ok {
		return nil
	}
	for _, it := range items {
		role, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		code, _ := role["roleId"].(string)
		if code == "" {
			errs = append(errs, ferr(ErrRequired, "roles.role.roleId", "Role id is required"))
			continue
		}
		if !roles.Has(code) {
			errs = append(errs, ferr(ErrRoleInvalid, "roles.role.roleId", "Unknown role '"+code+"'"))
		}
	}
	return errs
}

// sanitizeID делает из имени валидный внешний id: буквы и цифры
// остаются, остальное превращается в подчеркивания.
func sanitizeID(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// parseLocator разбирает "id:xxx" / "username:yyy"; голое значение
// трактуется как id.
func parseLocator(locator string) (field, value string) {
	if i := strings.IndexByte(locator, ':'); i > 0 {
		return locator[:i], locator[i+1:]
	}
	return "id", locator
}
