package catalog

import (
	"errors"
	"fmt"
)

// Column names recognized in extract rows.
const (
	ColumnFamilyID = "familyFederatedId"
	ColumnOptionID = "optionFederatedId"
	ColumnTitle    = "title"
	ColumnDetails  = "details"
)

// ErrMissingIdentifier is matched by every MissingIdentifierError.
var ErrMissingIdentifier = errors.New("optionFederatedId or familyFederatedId must be provided")

// MissingIdentifierError is returned when a row carries neither identifier column.
type MissingIdentifierError struct {
	// Row is the raw row that was rejected.
	Row Row
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("%s (columns: %v)", ErrMissingIdentifier.Error(), e.Row.Columns())
}

// Is lets errors.Is match ErrMissingIdentifier.
func (e *MissingIdentifierError) Is(target error) bool {
	return target == ErrMissingIdentifier
}

// Row is one decoded extract row keyed by column name.
type Row map[string]string

// Get returns the value of a column. Empty values count as absent.
func (r Row) Get(column string) (string, bool) {
	v, ok := r[column]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Columns returns the names of the non-empty columns of the row.
func (r Row) Columns() []string {
	cols := make([]string, 0, len(r))
	for k, v := range r {
		if v != "" {
			cols = append(cols, k)
		}
	}
	return cols
}

// Transform maps a row to an Item.
// The option identifier takes precedence over the family identifier; when both
// are present the family identifier is kept as the item's Family reference.
func Transform(row Row) (Item, error) {
	var (
		role        Role
		federatedID string
		family      string
	)

	optionID, hasOption := row.Get(ColumnOptionID)
	familyID, hasFamily := row.Get(ColumnFamilyID)

	switch {
	case hasOption:
		role = RoleOption
		federatedID = optionID
		if hasFamily {
			family = familyID
		}
	case hasFamily:
		role = RoleFamily
		federatedID = familyID
	default:
		return Item{}, &MissingIdentifierError{Row: row}
	}

	name, _ := row.Get(ColumnTitle)
	description, _ := row.Get(ColumnDetails)

	return Item{
		Name:        name,
		Description: description,
		FederatedID: federatedID,
		Roles:       []Role{role},
		Family:      family,
	}, nil
}
