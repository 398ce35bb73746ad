package reservation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const invoicePrefix = "FAC"

type invoiceSource interface {
	LastInvoiceCode(prefix string) (string, error)
}

// nextInvoiceCode derives the next date-scoped sequential code, e.g.
// FAC-20250120-001. The sequence restarts at 001 each day and the numeric
// field widens past 999 instead of truncating. Uniqueness under concurrent
// checkouts is guaranteed by the caller's retry against the unique column,
// not by this lookup.
func nextInvoiceCode(src invoiceSource, now time.Time) (string, error) {
	day := invoicePrefix + "-" + now.Format("20060102") + "-"
	last, err := src.LastInvoiceCode(day)
	if err != nil {
		return "", err
	}
	seq := 1
	if last != "" {
		if n, err := strconv.Atoi(last[strings.LastIndex(last, "-")+1:]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", day, seq), nil
}
