package validator

import (
	"unicode/utf8"
)

func ClubName(name string) bool {
	return utf8.RuneCountInString(name) >= 1 && utf8.RuneCountInString(name) <= 50
}

func ClubDescription(description string) bool {
	return utf8.RuneCountInString(description) >= 1 && utf8.RuneCountInString(description) <= 100
}

// ClubLinktree accepts an empty link (the field is optional) but bounds it
// once set.
func ClubLinktree(linktree string) bool {
	return linktree == "" || utf8.RuneCountInString(linktree) <= 100
}
