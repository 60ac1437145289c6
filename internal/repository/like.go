package repository

import "strings"

// nameContainsFilter is the shared case-insensitive contains condition for
// list filters. The ESCAPE declaration makes the backslashes produced by
// ToContainsPattern act as escapes on sqlite, which has no default escape
// character, as well as on postgres.
const nameContainsFilter = `LOWER(name) LIKE ? ESCAPE '\'`

// EscapeLikePattern escapes LIKE pattern metacharacters in the bracket
// dialect, where the opening bracket doubles as the escape character. The
// bracket is escaped first to avoid double-escaping the brackets
// introduced for % and _.
func EscapeLikePattern(input string) string {
	if input == "" {
		return input
	}

	input = strings.ReplaceAll(input, "[", "[[")
	input = strings.ReplaceAll(input, "%", "[%]")
	input = strings.ReplaceAll(input, "_", "[_]")
	return input
}

// escapeLikeBackslash escapes LIKE pattern metacharacters with a
// backslash, the dialect postgres and sqlite honor when the query declares
// ESCAPE '\'. The backslash is escaped first to avoid double-escaping the
// backslashes introduced for % and _.
func escapeLikeBackslash(input string) string {
	if input == "" {
		return input
	}

	input = strings.ReplaceAll(input, `\`, `\\`)
	input = strings.ReplaceAll(input, "%", `\%`)
	input = strings.ReplaceAll(input, "_", `\_`)
	return input
}

// ToContainsPattern wraps user input into a %...% contains pattern with
// metacharacters escaped, for use with nameContainsFilter.
func ToContainsPattern(input string) string {
	if strings.TrimSpace(input) == "" {
		return "%"
	}

	return "%" + escapeLikeBackslash(strings.TrimSpace(input)) + "%"
}
