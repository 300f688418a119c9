package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Store is the persistence contract every entity kind shares.
//
// GetByID returns (nil, nil) when no row matches. Update and Delete are
// silent no-ops for an absent id; callers check existence first.
type Store[T any] interface {
	List(ctx context.Context) ([]*T, error)
	ListPaged(ctx context.Context, pageNumber, pageSize int) (*Page[T], error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Add(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id int64) error
	// ExistingIDs returns the subset of ids that have a row, in ascending order.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// table describes how one entity kind maps onto its table. columns lists the
// mutable columns; values and fields must follow the same order.
type table[T any] struct {
	name    string
	kind    string
	columns []string
	orderBy string
	newItem func() *T
	base    func(*T) *entity.Base
	values  func(*T) []any
	fields  func(*T) []any
}

func (t table[T]) selectColumns(alias string) string {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	cols := make([]string, 0, len(t.columns)+4)
	cols = append(cols, prefix+"id")
	for _, c := range t.columns {
		cols = append(cols, prefix+c)
	}
	cols = append(cols, prefix+"created_at", prefix+"modified_at", prefix+"is_deleted")
	return strings.Join(cols, ", ")
}

func (t table[T]) scanTargets(item *T) []any {
	b := t.base(item)
	targets := make([]any, 0, len(t.columns)+4)
	targets = append(targets, &b.ID)
	targets = append(targets, t.fields(item)...)
	return append(targets, &b.CreatedAt, &b.ModifiedAt, &b.IsDeleted)
}

type crudStore[T any] struct {
	db  database.Querier
	log *zap.Logger
	t   table[T]
	now func() time.Time
}

func newCrudStore[T any](db database.Querier, log *zap.Logger, t table[T]) *crudStore[T] {
	return &crudStore[T]{
		db:  db,
		log: log.With(zap.String("repository", t.kind)),
		t:   t,
		now: time.Now,
	}
}

func (r *crudStore[T]) scanOne(row pgx.Row) (*T, error) {
	item := r.t.newItem()
	if err := row.Scan(r.t.scanTargets(item)...); err != nil {
		return nil, err
	}
	return item, nil
}

// queryAll runs a query whose select list is selectColumns("") or an aliased equivalent.
func (r *crudStore[T]) queryAll(ctx context.Context, op, query string, args ...any) ([]*T, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := r.scanOne(rows)
		if err != nil {
			r.log.Error("Failed to scan "+r.t.kind+" row", zap.Error(err))
			return nil, fmt.Errorf("scan %s: %w", r.t.kind, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate %s rows: %w", r.t.kind, err)
	}

	return items, nil
}

func (r *crudStore[T]) List(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`, r.t.selectColumns(""), r.t.name, r.t.orderBy)
	return r.queryAll(ctx, "list "+r.t.name, query)
}

func (r *crudStore[T]) ListPaged(ctx context.Context, pageNumber, pageSize int) (*Page[T], error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, ErrInvalidPage
	}

	total, err := r.count(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s LIMIT $1 OFFSET $2`,
		r.t.selectColumns(""), r.t.name, r.t.orderBy)
	items, err := r.queryAll(ctx, "list "+r.t.name+" page", query, pageSize, utils.PageOffset(pageNumber, pageSize))
	if err != nil {
		return nil, err
	}

	r.log.Debug("Page loaded",
		zap.Int("page", pageNumber),
		zap.Int("per_page", pageSize),
		zap.Int64("total", total),
		zap.Int("count", len(items)),
	)

	return &Page[T]{
		Items:      items,
		TotalCount: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}, nil
}

func (r *crudStore[T]) count(ctx context.Context) (int64, error) {
	var total int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.t.name)
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count "+r.t.name, zap.Error(err))
		return 0, fmt.Errorf("count %s: %w", r.t.name, err)
	}
	return total, nil
}

func (r *crudStore[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.t.selectColumns(""), r.t.name)

	item, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find "+r.t.kind+" by ID",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return nil, fmt.Errorf("find %s by id: %w", r.t.kind, err)
	}

	return item, nil
}

func (r *crudStore[T]) Add(ctx context.Context, item *T) (*T, error) {
	b := r.t.base(item)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.now().UTC()
	}

	cols := append(append([]string{}, r.t.columns...), "created_at", "is_deleted")
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	args := append(r.t.values(item), b.CreatedAt, b.IsDeleted)

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		r.t.name, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	if err := r.db.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		r.log.Error("Failed to create "+r.t.kind, zap.Error(err))
		return nil, fmt.Errorf("create %s: %w", r.t.kind, err)
	}

	r.log.Debug(r.t.kind+" created", zap.Int64("id", b.ID))
	return item, nil
}

func (r *crudStore[T]) Update(ctx context.Context, item *T) error {
	b := r.t.base(item)
	b.Touch(r.now())

	sets := make([]string, 0, len(r.t.columns)+1)
	for i, c := range r.t.columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", c, i+2))
	}
	sets = append(sets, fmt.Sprintf("modified_at = $%d", len(r.t.columns)+2))

	args := make([]any, 0, len(r.t.columns)+2)
	args = append(args, b.ID)
	args = append(args, r.t.values(item)...)
	args = append(args, b.ModifiedAt)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1`, r.t.name, strings.Join(sets, ", "))

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to update "+r.t.kind,
			zap.Error(err),
			zap.Int64("id", b.ID),
		)
		return fmt.Errorf("update %s: %w", r.t.kind, err)
	}

	return nil
}

func (r *crudStore[T]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.t.name)

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete "+r.t.kind,
			zap.Error(err),
			zap.Int64("id", id),
		)
		return fmt.Errorf("delete %s: %w", r.t.kind, err)
	}

	r.log.Debug(r.t.kind+" deleted",
		zap.Int64("id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

func (r *crudStore[T]) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	found := make([]int64, 0, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	query := fmt.Sprintf(`SELECT id FROM %s WHERE id = ANY($1) ORDER BY id`, r.t.name)
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to resolve "+r.t.kind+" ids", zap.Error(err), zap.Int64s("ids", ids))
		return nil, fmt.Errorf("resolve %s ids: %w", r.t.kind, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan "+r.t.kind+" id", zap.Error(err))
			return nil, fmt.Errorf("scan %s id: %w", r.t.kind, err)
		}
		found = append(found, id)
	}

	return found, rows.Err()
}

// searchColumn matches a case-sensitive substring of column.
func (r *crudStore[T]) searchColumn(ctx context.Context, column, term string) ([]*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE strpos(%s, $1) > 0 ORDER BY %s`,
		r.t.selectColumns(""), r.t.name, column, r.t.orderBy)
	return r.queryAll(ctx, "search "+r.t.name, query, term)
}
