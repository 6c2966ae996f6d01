package acquire

import (
	"strings"
	"unicode"

	"github.com/kbukum/scribekit/errors"
)

// ProjectName normalizes a title into a directory name: surrounding
// whitespace is trimmed, then every whitespace rune and path separator is
// replaced with an underscore.
//
//	ProjectName("My Talk") // "My_Talk"
func ProjectName(title string) (string, error) {
	name := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, strings.TrimSpace(title))

	switch name {
	case "":
		return "", errors.InvalidInput("title", "title is empty")
	case ".", "..":
		return "", errors.InvalidInput("title", "title "+name+" is not a valid project name")
	}
	return name, nil
}
