package profilerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storyloom/narrative-api/internal/domain/narrative"
)

// PostgresRepository implements narrative.ProfileRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// SaveNarrative applies the single conditional update keyed by profile id.
// Zero matched rows comes back from pgx as ErrNoRows and is translated to
// narrative.ErrProfileNotFound.
func (r *PostgresRepository) SaveNarrative(ctx context.Context, update narrative.ProfileUpdate) (narrative.ProfileRecord, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE profiles
		SET life_story = $1,
		    story_answers = $2,
		    joy_humanity_answers = $3,
		    passion_dreams_answers = $4,
		    connection_preferences_answers = $5,
		    open_ended_answer = $6,
		    story_generated_at = NOW()
		WHERE id = $7
		RETURNING id, name, location, life_story, story_answers, joy_humanity_answers,
		          passion_dreams_answers, connection_preferences_answers, open_ended_answer,
		          story_generated_at
	`,
		update.LifeStory,
		update.StoryAnswers,
		update.JoyHumanityAnswers,
		update.PassionDreamsAnswers,
		update.ConnectionPreferencesAnswers,
		update.OpenEndedAnswer,
		update.ProfileID,
	)

	var (
		record                    narrative.ProfileRecord
		name, location, openEnded *string
	)
	err := row.Scan(
		&record.ID,
		&name,
		&location,
		&record.LifeStory,
		&record.StoryAnswers,
		&record.JoyHumanityAnswers,
		&record.PassionDreamsAnswers,
		&record.ConnectionPreferencesAnswers,
		&openEnded,
		&record.StoryGeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return narrative.ProfileRecord{}, narrative.ErrProfileNotFound
		}
		return narrative.ProfileRecord{}, err
	}
	if name != nil {
		record.Name = *name
	}
	if location != nil {
		record.Location = *location
	}
	if openEnded != nil {
		record.OpenEndedAnswer = *openEnded
	}
	return record, nil
}

var _ narrative.ProfileRepository = (*PostgresRepository)(nil)
