// Package repository provides read access to the portal's relational
// store: raw activity records per category and the eligible-user
// directory. The scoring engine treats both as external collaborators.
package repository

import (
	"context"

	"github.com/facultymetrics/facultyrank/internal/domain/category"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
)

// Source is the read-only contract the engine consumes.
type Source interface {
	// FetchCategoryRecords returns one user's raw activity rows for one
	// category. Failures are the caller's to absorb.
	FetchCategoryRecords(ctx context.Context, userID int64, cat category.Category) ([]model.ActivityRecord, error)

	// ListEligibleUsers returns the ranking population: active,
	// non-administrator accounts with a name and contact field. The
	// eligibility predicate is portal policy, applied here so the engine
	// never sees excluded accounts.
	ListEligibleUsers(ctx context.Context) ([]model.User, error)
}
