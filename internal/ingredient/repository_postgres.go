package ingredient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub003/internal/units"
)

var ErrNotFound = errors.New("ingredient not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, ing *Ingredient) error {
	if ing.ID == uuid.Nil {
		ing.ID = uuid.New()
	}

	var density *string
	if ing.Density != nil {
		s := ing.Density.String()
		density = &s
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO ingredients (
			id, owner_id, name,
			pack_quantity, pack_unit, pack_price, currency, density
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		ing.ID,
		ing.OwnerID,
		ing.Name,
		ing.PackQuantity.String(),
		string(ing.PackUnit),
		ing.PackPrice.String(),
		ing.Currency,
		density,
	)
	return err
}

// --------------------------------------------------
// Get by ID (owner scoped)
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*Ingredient, error) {
	row := r.db.QueryRow(ctx, `
		SELECT
			id, owner_id, name,
			pack_quantity::text,
			pack_unit,
			pack_price::text,
			currency,
			density::text
		FROM ingredients
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID)

	ing, err := scanIngredient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return ing, err
}

// --------------------------------------------------
// List by owner
// --------------------------------------------------
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id, owner_id, name,
			pack_quantity::text,
			pack_unit,
			pack_price::text,
			currency,
			density::text
		FROM ingredients
		WHERE owner_id = $1
		ORDER BY name
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}

// --------------------------------------------------
// Update
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, ing *Ingredient) error {
	var density *string
	if ing.Density != nil {
		s := ing.Density.String()
		density = &s
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE ingredients
		SET name = $3,
		    pack_quantity = $4,
		    pack_unit = $5,
		    pack_price = $6,
		    currency = $7,
		    density = $8,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND owner_id = $2
	`,
		ing.ID,
		ing.OwnerID,
		ing.Name,
		ing.PackQuantity.String(),
		string(ing.PackUnit),
		ing.PackPrice.String(),
		ing.Currency,
		density,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM ingredients
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Batch resolve (used by recipe costing and the mixer)
// --------------------------------------------------
func (r *PostgresRepository) GetMany(ctx context.Context, ids []uuid.UUID, ownerID string) (map[uuid.UUID]*Ingredient, error) {
	out := make(map[uuid.UUID]*Ingredient, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT
			id, owner_id, name,
			pack_quantity::text,
			pack_unit,
			pack_price::text,
			currency,
			density::text
		FROM ingredients
		WHERE id = ANY($1) AND owner_id = $2
	`, ids, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		out[ing.ID] = ing
	}
	return out, rows.Err()
}

// --------------------------------------------------
// Row scanning
// --------------------------------------------------

// NUMERIC columns are selected as text and parsed, so money and quantities
// never pass through float64.
func scanIngredient(row pgx.Row) (*Ingredient, error) {
	var (
		ing      Ingredient
		packQty  string
		packUnit string
		price    string
		density  *string
	)

	if err := row.Scan(
		&ing.ID,
		&ing.OwnerID,
		&ing.Name,
		&packQty,
		&packUnit,
		&price,
		&ing.Currency,
		&density,
	); err != nil {
		return nil, err
	}

	var err error
	if ing.PackQuantity, err = decimal.NewFromString(packQty); err != nil {
		return nil, fmt.Errorf("bad pack_quantity for %s: %w", ing.ID, err)
	}
	if ing.PackPrice, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("bad pack_price for %s: %w", ing.ID, err)
	}

	unit, err := units.Parse(packUnit)
	if err != nil {
		return nil, fmt.Errorf("bad pack_unit for %s: %w", ing.ID, err)
	}
	ing.PackUnit = unit

	if density != nil {
		d, err := decimal.NewFromString(*density)
		if err != nil {
			return nil, fmt.Errorf("bad density for %s: %w", ing.ID, err)
		}
		ing.Density = &d
	}

	return &ing, nil
}
