package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
)

// RecommendationAdapter implements RecommendationRepository. Scheme
// matches live in a child table keyed by recommendation id.
type RecommendationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewRecommendationAdapter creates a new recommendation adapter
func NewRecommendationAdapter(client *postgres.Client) repositories.RecommendationRepository {
	return &RecommendationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a recommendation with its scheme matches in a single
// transaction
func (a *RecommendationAdapter) Create(ctx context.Context, recommendation *entities.Recommendation) error {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	record := goqu.Record{
		"id":                recommendation.ID,
		"health_id_id":      recommendation.HealthIDID,
		"strategy":          recommendation.Strategy,
		"eligibility_score": recommendation.EligibilityScore,
		"risk_level":        string(recommendation.RiskLevel),
		"created_at":        recommendation.CreatedAt,
	}

	query, args, err := a.db.Insert("recommendations").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create recommendation", err)
	}

	for position, match := range recommendation.Matches {
		matchRecord := goqu.Record{
			"recommendation_id": recommendation.ID,
			"scheme_id":         match.SchemeID,
			"match_percentage":  match.MatchPercentage,
			"reasoning":         sql.NullString{String: match.Reasoning, Valid: match.Reasoning != ""},
			"position":          position,
		}

		query, args, err := a.db.Insert("recommendation_matches").Rows(matchRecord).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build match insert query", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return apperrors.NewInternalError("failed to create recommendation match", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit recommendation", err)
	}

	return nil
}

// GetLatestByHealthID retrieves the most recent recommendation with its
// matches in stored order
func (a *RecommendationAdapter) GetLatestByHealthID(ctx context.Context, healthIDID string) (*entities.Recommendation, error) {
	query, args, err := a.db.Select(
		"id", "health_id_id", "strategy", "eligibility_score",
		"risk_level", "created_at",
	).From("recommendations").
		Where(goqu.Ex{"health_id_id": healthIDID}).
		Order(goqu.I("created_at").Desc()).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	recommendation := &entities.Recommendation{}
	var riskLevel string

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&recommendation.ID,
		&recommendation.HealthIDID,
		&recommendation.Strategy,
		&recommendation.EligibilityScore,
		&riskLevel,
		&recommendation.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no recommendation for health id %s", healthIDID))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get recommendation", err)
	}

	recommendation.RiskLevel = entities.RiskLevel(riskLevel)

	matches, err := a.listMatches(ctx, recommendation.ID)
	if err != nil {
		return nil, err
	}
	recommendation.Matches = matches

	return recommendation, nil
}

func (a *RecommendationAdapter) listMatches(ctx context.Context, recommendationID string) ([]entities.SchemeMatch, error) {
	query, args, err := a.db.Select("scheme_id", "match_percentage", "reasoning").
		From("recommendation_matches").
		Where(goqu.Ex{"recommendation_id": recommendationID}).
		Order(goqu.I("position").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build matches query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list recommendation matches", err)
	}
	defer rows.Close()

	matches := []entities.SchemeMatch{}
	for rows.Next() {
		var match entities.SchemeMatch
		var reasoning sql.NullString

		if err := rows.Scan(&match.SchemeID, &match.MatchPercentage, &reasoning); err != nil {
			return nil, apperrors.NewInternalError("failed to scan recommendation match", err)
		}
		match.Reasoning = reasoning.String
		matches = append(matches, match)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating recommendation matches", err)
	}

	return matches, nil
}
