package service

import (
	"regexp"
	"unicode/utf8"
)

const (
	NameMaxLen    = 255
	EmailMaxLen   = 255
	PhoneMaxLen   = 20
	AddressMaxLen = 1000
	PasswordMin   = 8

	DefaultPerPage = 10
	MaxPerPage     = 100
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n > 0 && n <= NameMaxLen
}

func validEmail(email string) bool {
	return len(email) <= EmailMaxLen && emailRegexp.MatchString(email)
}

func validPhone(phone string) bool {
	return utf8.RuneCountInString(phone) <= PhoneMaxLen
}

func normalizePage(page uint64) uint64 {
	if page == 0 {
		return 1
	}

	return page
}

func normalizePerPage(perPage uint64) uint64 {
	if perPage == 0 {
		return DefaultPerPage
	}

	if perPage > MaxPerPage {
		return MaxPerPage
	}

	return perPage
}
