// Утилитарные функции общего назначения
package utils

import "strings"

func Ptr[T any](v T) *T {
	return &v
}

// StrPtr возвращает nil для пустой (после trim) строки.
func StrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref возвращает значение указателя или def, если указатель nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
