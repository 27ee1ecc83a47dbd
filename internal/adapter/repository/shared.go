package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lingolog/lingolog/internal/entity"
)

// parseID converts a wire identifier into a uuid, mapping malformed input to
// the entity's not-found error so callers never see a parse failure.
func parseID(raw string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, notFound
	}
	return id, nil
}

func parseIDs(raw []string, notFound error) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := parseID(r, notFound)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func translatePgError(err error, duplicate error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return duplicate
	}
	return err
}

func languageCodes(languages []entity.Language) []string {
	codes := make([]string, 0, len(languages))
	for _, lang := range languages {
		codes = append(codes, lang.Code)
	}
	return codes
}

func languagesFromCodes(codes []string) []entity.Language {
	if codes == nil {
		return nil
	}
	languages := make([]entity.Language, 0, len(codes))
	for _, code := range codes {
		if lang, ok := entity.LookupLanguage(code); ok {
			languages = append(languages, lang)
			continue
		}
		languages = append(languages, entity.Language{Code: code, Name: code})
	}
	return languages
}

func activityIDs(activities []entity.Activity) []int32 {
	ids := make([]int32, 0, len(activities))
	for _, act := range activities {
		ids = append(ids, act.ID)
	}
	return ids
}

func activitiesFromIDs(ids []int32) []entity.Activity {
	activities := make([]entity.Activity, 0, len(ids))
	for _, id := range ids {
		if act, ok := entity.LookupActivity(id); ok {
			activities = append(activities, act)
			continue
		}
		activities = append(activities, entity.Activity{ID: id})
	}
	return activities
}
