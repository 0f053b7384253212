package repository

import (
	"strings"

	"gorm.io/gorm"
)

// dbDialectName returns the database dialect, defaulting to sqlite.
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

func likeOperatorByDialect(dialect string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return "ILIKE"
	default:
		return "LIKE"
	}
}

// escapeLikePattern neutralizes LIKE metacharacters in user-supplied search
// terms. The caller must pair the resulting pattern with ESCAPE '\'.
func escapeLikePattern(term string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return replacer.Replace(term)
}

// buildNameLikeCondition builds an escaped, dialect-aware LIKE condition for
// the given columns and returns it with its argument list.
func buildNameLikeCondition(db *gorm.DB, columns []string, term string) (string, []interface{}) {
	operator := likeOperatorByDialect(dbDialectName(db))
	like := "%" + escapeLikePattern(strings.TrimSpace(term)) + "%"

	parts := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		trimmed := strings.TrimSpace(column)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed+" "+operator+" ? ESCAPE '\\'")
		args = append(args, like)
	}
	return strings.Join(parts, " OR "), args
}
