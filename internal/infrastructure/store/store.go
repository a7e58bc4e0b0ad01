package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/housestock/backend/internal/domain"
)

// table describes the columns a partial update may touch
type table struct {
	name      string
	updatable map[string]bool
	touchable bool // has an updated_at column
}

func columnSet(columns ...string) map[string]bool {
	set := make(map[string]bool, len(columns))
	for _, c := range columns {
		set[c] = true
	}
	return set
}

// update applies changes to the row with the given id
func update(ctx context.Context, db *sql.DB, t table, id string, changes []domain.Change, now time.Time) error {
	if len(changes) == 0 {
		return domain.ErrNoFieldsToUpdate
	}

	assignments := make([]string, 0, len(changes)+1)
	args := make([]interface{}, 0, len(changes)+2)
	for _, change := range changes {
		if !t.updatable[change.Column] {
			return fmt.Errorf("%w: unknown column %s", domain.ErrInvalidRequest, change.Column)
		}
		assignments = append(assignments, change.Column+" = ?")
		args = append(args, change.Value)
	}
	if t.touchable {
		assignments = append(assignments, "updated_at = ?")
		args = append(args, now)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.name, strings.Join(assignments, ", "))
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", t.name, id, err)
	}
	return requireRow(result, t.name, id)
}

// remove deletes the row with the given id
func remove(ctx context.Context, db *sql.DB, tableName, id string) error {
	result, err := db.ExecContext(ctx, "DELETE FROM "+tableName+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", tableName, id, err)
	}
	return requireRow(result, tableName, id)
}

// setChecked flips the checked flag of a shopping list row
func setChecked(ctx context.Context, db *sql.DB, tableName, id string, checked bool) error {
	result, err := db.ExecContext(ctx, "UPDATE "+tableName+" SET checked = ? WHERE id = ?", checked, id)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", tableName, id, err)
	}
	return requireRow(result, tableName, id)
}

func requireRow(result sql.Result, tableName, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: %w", tableName, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, tableName, id)
	}
	return nil
}

// money converts a price to the two decimal places the columns store
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intOrNil(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
