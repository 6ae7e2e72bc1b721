package repo

import (
	"context"
	"database/sql"
	"time"
)

// Design is a persisted design summary row.
type Design struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	DiameterM     float64   `json:"diameter_m"`
	SafetyFactor  float64   `json:"safety_factor"`
	TotalLoadKN   float64   `json:"total_load_kn"`
	AllowableKN   float64   `json:"allowable_kn"`
	PileCount     int       `json:"pile_count"`
	TotalVolumeM3 float64   `json:"total_volume_m3"`
	TotalCostUSD  float64   `json:"total_cost_usd"`
	CreatedAt     time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	SaveDesign(ctx context.Context, userID int, d Design) (int, error)
	ListDesigns(ctx context.Context, userID int) ([]Design, error)
	GetDesign(ctx context.Context, userID, id int) (Design, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveDesign(ctx context.Context, userID int, d Design) (int, error) {
	var id int
	query := `INSERT INTO designs
		(user_id, name, diameter_m, safety_factor, total_load_kn, allowable_kn, pile_count, total_volume_m3, total_cost_usd)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		userID, d.Name, d.DiameterM, d.SafetyFactor, d.TotalLoadKN,
		d.AllowableKN, d.PileCount, d.TotalVolumeM3, d.TotalCostUSD).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListDesigns(ctx context.Context, userID int) ([]Design, error) {
	query := `SELECT id, name, diameter_m, safety_factor, total_load_kn, allowable_kn, pile_count, total_volume_m3, total_cost_usd, created_at
		FROM designs WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []Design
	for rows.Next() {
		var d Design
		if err := rows.Scan(&d.ID, &d.Name, &d.DiameterM, &d.SafetyFactor, &d.TotalLoadKN,
			&d.AllowableKN, &d.PileCount, &d.TotalVolumeM3, &d.TotalCostUSD, &d.CreatedAt); err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}
	return designs, rows.Err()
}

func (r *PostgresRepository) GetDesign(ctx context.Context, userID, id int) (Design, error) {
	query := `SELECT id, name, diameter_m, safety_factor, total_load_kn, allowable_kn, pile_count, total_volume_m3, total_cost_usd, created_at
		FROM designs WHERE user_id=$1 AND id=$2`
	var d Design
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&d.ID, &d.Name, &d.DiameterM, &d.SafetyFactor, &d.TotalLoadKN,
		&d.AllowableKN, &d.PileCount, &d.TotalVolumeM3, &d.TotalCostUSD, &d.CreatedAt)
	return d, err
}
