package persistence

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/levy-tracker/backend/internal/domain/entity"
)

// PostgreSQL SQLSTATE codes.
const (
	pgQueryCanceled        = "57014"
	pgSerializationFailure = "40001"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isStatementTimeout reports whether PostgreSQL cancelled the statement on statement_timeout.
func isStatementTimeout(err error) bool {
	return pgErrorCode(err) == pgQueryCanceled
}

// isSerializationFailure reports whether a serializable transaction lost a race
// against a concurrent one.
func isSerializationFailure(err error) bool {
	return pgErrorCode(err) == pgSerializationFailure
}

// sortNewestYearFirst orders numeric year labels numerically, others lexically, both descending.
func sortNewestYearFirst(records []*entity.RecordSummary) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := strings.TrimSpace(records[i].YearLabel), strings.TrimSpace(records[j].YearLabel)
		na, errA := strconv.Atoi(a)
		nb, errB := strconv.Atoi(b)
		if errA == nil && errB == nil {
			return na > nb
		}
		return a > b
	})
}
