package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Postgres is a career and resource catalog backed by PostgreSQL.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool to the catalog database.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

const careerColumns = `id, title, industry, description, required_skills, preferred_skills,
	education_requirements, experience_level, salary_range_min, salary_range_max,
	growth_potential, demand_score`

// QueryCareers implements CareerCatalog.
func (p *Postgres) QueryCareers(ctx context.Context, query CareerQuery) ([]types.Career, error) {
	sql := `SELECT ` + careerColumns + ` FROM careers WHERE 1=1`
	args := []any{}
	argNum := 1

	if query.Industry != "" {
		sql += fmt.Sprintf(" AND industry ILIKE $%d", argNum)
		args = append(args, query.Industry)
		argNum++
	}
	if query.ExperienceLevel != "" {
		sql += fmt.Sprintf(" AND experience_level = $%d", argNum)
		args = append(args, query.ExperienceLevel)
		argNum++
	}

	sql += " ORDER BY demand_score DESC, growth_potential DESC"
	if query.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, query.Limit)
	}

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query careers: %w", err)
	}
	defer rows.Close()

	var careers []types.Career
	for rows.Next() {
		career, err := scanCareer(rows)
		if err != nil {
			return nil, err
		}
		careers = append(careers, career)
	}
	return careers, rows.Err()
}

// GetCareer implements CareerCatalog.
func (p *Postgres) GetCareer(ctx context.Context, id string) (*types.Career, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+careerColumns+` FROM careers WHERE id = $1`, id)
	career, err := scanCareer(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get career: %w", err)
	}
	return &career, nil
}

// AddCareer implements CareerCatalog.
func (p *Postgres) AddCareer(ctx context.Context, career types.Career) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO careers (`+careerColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		   title = $2, industry = $3, description = $4, required_skills = $5,
		   preferred_skills = $6, education_requirements = $7, experience_level = $8,
		   salary_range_min = $9, salary_range_max = $10, growth_potential = $11,
		   demand_score = $12, updated_at = NOW()`,
		career.ID, career.Title, career.Industry, career.Description,
		career.RequiredSkills, career.PreferredSkills, career.EducationRequirements,
		career.ExperienceLevel, career.SalaryRangeMin, career.SalaryRangeMax,
		career.GrowthPotential, career.DemandScore,
	)
	if err != nil {
		return fmt.Errorf("failed to add career %s: %w", career.ID, err)
	}
	return nil
}

// QueryResources implements ResourceCatalog.
func (p *Postgres) QueryResources(ctx context.Context, query ResourceQuery) ([]types.LearningResource, error) {
	sql := `SELECT title, provider, url, type, duration, cost, rating,
	          difficulty_level, skills_covered, skill_type
	        FROM learning_resources
	        WHERE $1 = ANY(skills_covered)`
	args := []any{query.Skill}
	argNum := 2

	if query.Level != "" && query.Level != "intermediate" {
		sql += fmt.Sprintf(" AND difficulty_level = $%d", argNum)
		args = append(args, query.Level)
	}

	sql += " ORDER BY rating DESC NULLS LAST, title"

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	var resources []types.LearningResource
	for rows.Next() {
		var r types.LearningResource
		var url, duration, cost, skillType *string
		if err := rows.Scan(&r.Title, &r.Provider, &url, &r.Type, &duration, &cost,
			&r.Rating, &r.DifficultyLevel, &r.SkillsCovered, &skillType); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		if url != nil {
			r.URL = *url
		}
		if duration != nil {
			r.Duration = *duration
		}
		if cost != nil {
			r.Cost = *cost
		}
		if skillType != nil {
			r.SkillType = types.SkillType(*skillType)
		}
		resources = append(resources, r)
	}
	return resources, rows.Err()
}

func scanCareer(row pgx.Row) (types.Career, error) {
	var c types.Career
	var description *string
	err := row.Scan(&c.ID, &c.Title, &c.Industry, &description,
		&c.RequiredSkills, &c.PreferredSkills, &c.EducationRequirements,
		&c.ExperienceLevel, &c.SalaryRangeMin, &c.SalaryRangeMax,
		&c.GrowthPotential, &c.DemandScore)
	if err != nil {
		return types.Career{}, err
	}
	if description != nil {
		c.Description = *description
	}
	return c, nil
}
