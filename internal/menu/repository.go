package menu

import (
	"context"
	"database/sql"
	"errors"

	"dapuribu-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Menu, error)
	GetByID(ctx context.Context, id int64) (Menu, error)
	Create(ctx context.Context, input MenuInput) (Menu, error)
	Update(ctx context.Context, id int64, input MenuInput) error
	UpdateImageURL(ctx context.Context, id int64, imageURL string) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const menuColumns = "id, name, description, price, category, image_url, available"

func (r *repository) List(ctx context.Context, opts ListOptions) ([]Menu, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListMenus"),
	)

	query := "SELECT " + menuColumns + " FROM menus"
	if opts.AvailableOnly {
		query += " WHERE available = TRUE"
	}

	switch opts.OrderBy {
	case "category":
		query += " ORDER BY category NULLS LAST, id"
	default:
		query += " ORDER BY id"
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query menus", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	menus := []Menu{}
	for rows.Next() {
		var m Menu
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Description, &m.Price,
			&m.Category, &m.ImageURL, &m.Available,
		); err != nil {
			log.Error("failed to scan menu row", zap.Error(err))
			return nil, err
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("menus listed", zap.Int("count", len(menus)))
	return menus, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (Menu, error) {
	var m Menu
	err := r.db.QueryRowContext(ctx,
		"SELECT "+menuColumns+" FROM menus WHERE id = $1", id,
	).Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.ImageURL, &m.Available)

	if errors.Is(err, sql.ErrNoRows) {
		return Menu{}, ErrMenuNotFound
	}
	return m, err
}

func (r *repository) Create(ctx context.Context, input MenuInput) (Menu, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateMenu"),
		zap.String("name", input.Name),
	)

	m := Menu{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Available:   input.Available,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO menus (name, description, price, category, image_url, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		input.Name, input.Description, input.Price,
		input.Category, input.ImageURL, input.Available,
	).Scan(&m.ID)

	if err != nil {
		log.Error("failed to insert menu", zap.Error(err))
		return Menu{}, err
	}

	log.Info("menu created", zap.Int64("menu_id", m.ID))
	return m, nil
}

func (r *repository) Update(ctx context.Context, id int64, input MenuInput) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE menus
		SET name = $1, description = $2, price = $3,
		    category = $4, image_url = $5, available = $6
		WHERE id = $7
	`,
		input.Name, input.Description, input.Price,
		input.Category, input.ImageURL, input.Available, id,
	)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrMenuNotFound
	}
	return nil
}

func (r *repository) UpdateImageURL(ctx context.Context, id int64, imageURL string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE menus SET image_url = $1 WHERE id = $2", imageURL, id,
	)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrMenuNotFound
	}
	return nil
}

// Delete removes the row only. Order items keep their weak menu reference;
// display degrades to a placeholder.
func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM menus WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrMenuNotFound
	}
	return nil
}
