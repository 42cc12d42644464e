// Package sorter orders process snapshots by a selected key.
package sorter

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"procexport/models"
)

// Sort returns a new slice ordered ascending by key. Text keys compare
// case-insensitively, PID compares numerically. Equal records keep their
// input order and the input slice is left untouched.
func Sort(records []models.ProcessRecord, key models.SortKey) []models.ProcessRecord {
	out := slices.Clone(records)
	if out == nil {
		out = []models.ProcessRecord{}
	}
	slices.SortStableFunc(out, comparator(key))
	return out
}

// SortByToken resolves token to a key, falling back to Name, and sorts
func SortByToken(records []models.ProcessRecord, token string) []models.ProcessRecord {
	key, _ := models.ParseSortKey(token)
	return Sort(records, key)
}

func comparator(key models.SortKey) func(a, b models.ProcessRecord) int {
	switch key {
	case models.SortByPID:
		return func(a, b models.ProcessRecord) int {
			return cmp.Compare(a.PID, b.PID)
		}
	case models.SortByUser:
		return foldedBy(func(r models.ProcessRecord) string { return r.User })
	case models.SortByStatus:
		return foldedBy(func(r models.ProcessRecord) string { return r.Status })
	case models.SortByName:
		return foldedBy(func(r models.ProcessRecord) string { return r.Name })
	default:
		return foldedBy(func(r models.ProcessRecord) string { return r.Name })
	}
}

// foldedBy compares a text field after Unicode case folding
func foldedBy(field func(models.ProcessRecord) string) func(a, b models.ProcessRecord) int {
	// a Caser keeps state, one per comparator
	fold := cases.Fold()
	return func(a, b models.ProcessRecord) int {
		return strings.Compare(fold.String(field(a)), fold.String(field(b)))
	}
}
