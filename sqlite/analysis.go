package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/skeptic"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ skeptic.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements skeptic.AnalysisService using SQLite.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

const analysisColumns = `id, article_title, article_url, article_authors, method, content_hash,
	core_claims, language_analysis, red_flags, verification_questions, entities,
	counter_argument, model, created_at`

// CreateAnalysis stores a new analysis, assigning ID and CreatedAt.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *skeptic.Analysis) error {
	if err := analysis.Validate(); err != nil {
		return err
	}

	analysis.ID = uuid.New().String()
	analysis.CreatedAt = time.Now().UTC()

	authors, err := encodeStrings(analysis.ArticleAuthors)
	if err != nil {
		return err
	}
	claims, err := encodeStrings(analysis.CoreClaims)
	if err != nil {
		return err
	}
	redFlags, err := encodeStrings(analysis.RedFlags)
	if err != nil {
		return err
	}
	questions, err := encodeStrings(analysis.VerificationQuestions)
	if err != nil {
		return err
	}
	entities, err := json.Marshal(analysis.Entities)
	if err != nil {
		return fmt.Errorf("failed to encode entities: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (`+analysisColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, analysis.ID, analysis.ArticleTitle, analysis.ArticleURL, authors,
		string(analysis.Method), analysis.ContentHash, claims, analysis.LanguageAnalysis,
		redFlags, questions, string(entities), analysis.CounterArgument,
		analysis.Model, analysis.CreatedAt.Format(time.RFC3339Nano))

	return err
}

// FindAnalysisByID retrieves an analysis by ID.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*skeptic.Analysis, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+analysisColumns+`
		FROM analyses
		WHERE id = ?
	`, id)

	analysis, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, skeptic.Errorf(skeptic.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

// FindAnalysisByURL retrieves the most recent analysis for a URL.
func (s *AnalysisService) FindAnalysisByURL(ctx context.Context, url string) (*skeptic.Analysis, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+analysisColumns+`
		FROM analyses
		WHERE article_url = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, url)

	analysis, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, skeptic.Errorf(skeptic.ENOTFOUND, "no analysis found for URL")
	}
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

// FindAnalyses retrieves analyses matching the filter, most recent first.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter skeptic.AnalysisFilter) ([]*skeptic.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + analysisColumns + " FROM analyses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND article_url = ?")
		args = append(args, *filter.URL)
	}

	// rowid breaks ties between analyses created in the same instant.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*skeptic.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}

	return analyses, rows.Err()
}

// DeleteAnalysis permanently removes an analysis.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return skeptic.Errorf(skeptic.ENOTFOUND, "analysis not found")
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*skeptic.Analysis, error) {
	var analysis skeptic.Analysis
	var method, authors, claims, redFlags, questions, entities, createdAt string

	err := row.Scan(&analysis.ID, &analysis.ArticleTitle, &analysis.ArticleURL, &authors,
		&method, &analysis.ContentHash, &claims, &analysis.LanguageAnalysis,
		&redFlags, &questions, &entities, &analysis.CounterArgument,
		&analysis.Model, &createdAt)
	if err != nil {
		return nil, err
	}

	analysis.Method = skeptic.ExtractionMethod(method)

	if analysis.ArticleAuthors, err = decodeStrings(authors, "article_authors"); err != nil {
		return nil, err
	}
	if analysis.CoreClaims, err = decodeStrings(claims, "core_claims"); err != nil {
		return nil, err
	}
	if analysis.RedFlags, err = decodeStrings(redFlags, "red_flags"); err != nil {
		return nil, err
	}
	if analysis.VerificationQuestions, err = decodeStrings(questions, "verification_questions"); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(entities), &analysis.Entities); err != nil {
		return nil, fmt.Errorf("failed to parse entities: %w", err)
	}

	if analysis.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &analysis, nil
}

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(data), nil
}

func decodeStrings(data, fieldName string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}
