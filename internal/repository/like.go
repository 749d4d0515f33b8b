package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern шаблон ILIKE для поиска подстроки, спецсимволы LIKE экранированы.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
