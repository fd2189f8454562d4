package recipe

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

var ErrNotFound = errors.New("recipe not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create (recipe + sections + items in one tx)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, rec *Recipe) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO recipes (id, owner_id, name, yield_quantity, yield_unit)
		VALUES ($1,$2,$3,$4,$5)
	`,
		rec.ID,
		rec.OwnerID,
		rec.Name,
		rec.YieldQuantity.String(),
		string(rec.YieldUnit),
	)
	if err != nil {
		return err
	}

	if err := insertChildren(ctx, tx, rec); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Get by ID (owner scoped, children included)
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*Recipe, error) {
	var (
		rec       Recipe
		yieldQty  string
		yieldUnit string
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, yield_quantity::text, yield_unit
		FROM recipes
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID).Scan(
		&rec.ID,
		&rec.OwnerID,
		&rec.Name,
		&yieldQty,
		&yieldUnit,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if rec.YieldQuantity, err = decimal.NewFromString(yieldQty); err != nil {
		return nil, fmt.Errorf("bad yield_quantity for %s: %w", rec.ID, err)
	}
	if rec.YieldUnit, err = units.Parse(yieldUnit); err != nil {
		return nil, fmt.Errorf("bad yield_unit for %s: %w", rec.ID, err)
	}

	if err := r.loadChildren(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// --------------------------------------------------
// List by owner (headers only, no children)
// --------------------------------------------------
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Recipe, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, yield_quantity::text, yield_unit
		FROM recipes
		WHERE owner_id = $1
		ORDER BY name
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Recipe
	for rows.Next() {
		var (
			rec       Recipe
			yieldQty  string
			yieldUnit string
		)
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Name, &yieldQty, &yieldUnit); err != nil {
			return nil, err
		}
		if rec.YieldQuantity, err = decimal.NewFromString(yieldQty); err != nil {
			return nil, fmt.Errorf("bad yield_quantity for %s: %w", rec.ID, err)
		}
		if rec.YieldUnit, err = units.Parse(yieldUnit); err != nil {
			return nil, fmt.Errorf("bad yield_unit for %s: %w", rec.ID, err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// --------------------------------------------------
// Update (replace children wholesale)
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, rec *Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE recipes
		SET name = $3,
		    yield_quantity = $4,
		    yield_unit = $5,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND owner_id = $2
	`,
		rec.ID,
		rec.OwnerID,
		rec.Name,
		rec.YieldQuantity.String(),
		string(rec.YieldUnit),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM recipe_items WHERE recipe_id = $1`, rec.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM recipe_sections WHERE recipe_id = $1`, rec.ID); err != nil {
		return err
	}

	if err := insertChildren(ctx, tx, rec); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Delete
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM recipes
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
// Children
// --------------------------------------------------

func insertChildren(ctx context.Context, tx pgx.Tx, rec *Recipe) error {
	for si := range rec.Sections {
		s := &rec.Sections[si]
		s.Position = si

		err := tx.QueryRow(ctx, `
			INSERT INTO recipe_sections (recipe_id, name, position, bake_temp, bake_time, method)
			VALUES ($1,$2,$3,$4,$5,$6)
			RETURNING id
		`, rec.ID, s.Name, s.Position, s.BakeTemp, s.BakeTime, s.Method).Scan(&s.ID)
		if err != nil {
			return err
		}

		if err := insertItems(ctx, tx, rec.ID, &s.ID, s.Items); err != nil {
			return err
		}
	}

	if len(rec.Sections) == 0 {
		if err := insertItems(ctx, tx, rec.ID, nil, rec.Items); err != nil {
			return err
		}
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, recipeID uuid.UUID, sectionID *int64, items []Usage) error {
	for pos, u := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipe_items (recipe_id, section_id, position, ingredient_id, quantity, unit, note)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
		`,
			recipeID,
			sectionID,
			pos,
			u.IngredientID,
			u.Quantity.String(),
			string(u.Unit),
			u.Note,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) loadChildren(ctx context.Context, rec *Recipe) error {
	sectionRows, err := r.db.Query(ctx, `
		SELECT id, name, position, bake_temp, bake_time, method
		FROM recipe_sections
		WHERE recipe_id = $1
		ORDER BY position
	`, rec.ID)
	if err != nil {
		return err
	}
	defer sectionRows.Close()

	sectionIndex := make(map[int64]int)
	for sectionRows.Next() {
		var s Section
		if err := sectionRows.Scan(&s.ID, &s.Name, &s.Position, &s.BakeTemp, &s.BakeTime, &s.Method); err != nil {
			return err
		}
		sectionIndex[s.ID] = len(rec.Sections)
		rec.Sections = append(rec.Sections, s)
	}
	if err := sectionRows.Err(); err != nil {
		return err
	}

	itemRows, err := r.db.Query(ctx, `
		SELECT id, section_id, ingredient_id, quantity::text, unit, note
		FROM recipe_items
		WHERE recipe_id = $1
		ORDER BY section_id NULLS FIRST, position
	`, rec.ID)
	if err != nil {
		return err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			u         Usage
			sectionID *int64
			qty       string
			unit      string
		)
		if err := itemRows.Scan(&u.ID, &sectionID, &u.IngredientID, &qty, &unit, &u.Note); err != nil {
			return err
		}
		if u.Quantity, err = decimal.NewFromString(qty); err != nil {
			return fmt.Errorf("bad quantity on item %d: %w", u.ID, err)
		}
		if u.Unit, err = units.Parse(unit); err != nil {
			return fmt.Errorf("bad unit on item %d: %w", u.ID, err)
		}

		if sectionID == nil {
			rec.Items = append(rec.Items, u)
		} else if idx, ok := sectionIndex[*sectionID]; ok {
			rec.Sections[idx].Items = append(rec.Sections[idx].Items, u)
		}
	}
	return itemRows.Err()
}
