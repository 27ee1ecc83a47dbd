package usecase

import (
	"context"
	"time"

	"github.com/lingolog/lingolog/internal/entity"
	"github.com/lingolog/lingolog/internal/repository"
)

// ConfigurationOptions bundles everything a log draft form needs, already
// narrowed to the user's registrations and the draft's current selection.
type ConfigurationOptions struct {
	Languages  []entity.Language
	Activities []entity.Activity
	Units      []entity.Unit
	Tags       []entity.Tag
}

// LogUsecase encapsulates business logic for immersion logs: scoring,
// contest attachment and catalog narrowing.
type LogUsecase interface {
	CreateLog(ctx context.Context, userID int64, draft *entity.LogDraft) (*entity.Log, error)
	ListLogs(ctx context.Context, query *repository.ListLogQuery) ([]entity.Log, int64, error)
	UpdateLogRegistrations(ctx context.Context, userID int64, logID string, mode entity.TrackingMode, selectedRegistrationIDs []string) (*entity.Log, error)
	DeleteLog(ctx context.Context, userID int64, logID string) error
	ConfigurationOptions(ctx context.Context, userID int64, mode entity.TrackingMode, activityID *int32, languageCode string) (*ConfigurationOptions, error)
}

// NewLogUsecase wires the repositories with default behaviour.
func NewLogUsecase(logs repository.LogRepository, registrations repository.RegistrationRepository, catalog repository.CatalogRepository) LogUsecase {
	return &logUsecase{
		logs:          logs,
		registrations: registrations,
		catalog:       catalog,
		clock:         time.Now,
	}
}

type logUsecase struct {
	logs          repository.LogRepository
	registrations repository.RegistrationRepository
	catalog       repository.CatalogRepository
	clock         func() time.Time
}

func (u *logUsecase) CreateLog(ctx context.Context, userID int64, draft *entity.LogDraft) (*entity.Log, error) {
	if draft == nil {
		return nil, entity.ErrNoScoreableAmount
	}

	language, ok := entity.LookupLanguage(draft.LanguageCode)
	if !ok {
		return nil, entity.ErrUnknownLanguage
	}
	activity, ok := entity.LookupActivity(draft.ActivityID)
	if !ok {
		return nil, entity.ErrUnknownActivity
	}
	mode, err := entity.ParseTrackingMode(string(draft.TrackingMode))
	if err != nil {
		return nil, err
	}

	var unit *entity.Unit
	if draft.UnitID != nil {
		found, err := u.catalog.GetUnit(ctx, *draft.UnitID)
		if err != nil {
			return nil, err
		}
		if found.ActivityID != activity.ID {
			return nil, entity.ErrUnitActivityMismatch
		}
		unit = found
	}

	score, ok := entity.EstimateScore(draft.Amount, unit, draft.DurationMinutes, activity.TimeModifier)
	if !ok {
		return nil, entity.ErrNoScoreableAmount
	}

	now := u.clock()
	registrations, err := u.registrations.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	selection, err := selectRegistrations(registrations, draft.SelectedRegistrationIDs)
	if err != nil {
		return nil, err
	}
	attached, err := entity.ResolveAttachments(entity.ResolveInput{
		Registrations:   registrations,
		ManualSelection: selection,
		TrackingMode:    mode,
		Language:        language,
		Activity:        activity,
		Now:             now,
	})
	if err != nil {
		return nil, err
	}

	log := &entity.Log{
		UserID:          userID,
		LanguageCode:    language.Code,
		ActivityID:      activity.ID,
		Amount:          draft.Amount,
		DurationSeconds: durationSeconds(draft.DurationMinutes),
		Score:           score,
		Tags:            draft.Tags,
		Description:     draft.Description,
		RegistrationIDs: registrationIDs(attached),
	}
	if unit != nil {
		log.UnitID = &unit.ID
		log.UnitName = unit.Name
	}
	log.Normalize(now)

	return u.logs.Create(ctx, log)
}

func (u *logUsecase) ListLogs(ctx context.Context, query *repository.ListLogQuery) ([]entity.Log, int64, error) {
	return u.logs.List(ctx, query)
}

// UpdateLogRegistrations re-submits an existing log under a new tracking mode
// or contest selection. Eligibility is evaluated at the time of the update.
func (u *logUsecase) UpdateLogRegistrations(ctx context.Context, userID int64, logID string, mode entity.TrackingMode, selectedRegistrationIDs []string) (*entity.Log, error) {
	mode, err := entity.ParseTrackingMode(string(mode))
	if err != nil {
		return nil, err
	}
	log, err := u.logs.GetByID(ctx, userID, logID)
	if err != nil {
		return nil, err
	}
	language, ok := entity.LookupLanguage(log.LanguageCode)
	if !ok {
		return nil, entity.ErrUnknownLanguage
	}
	activity, ok := entity.LookupActivity(log.ActivityID)
	if !ok {
		return nil, entity.ErrUnknownActivity
	}

	registrations, err := u.registrations.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	selection, err := selectRegistrations(registrations, selectedRegistrationIDs)
	if err != nil {
		return nil, err
	}
	attached, err := entity.ResolveAttachments(entity.ResolveInput{
		Registrations:   registrations,
		ManualSelection: selection,
		TrackingMode:    mode,
		Language:        language,
		Activity:        activity,
		Now:             u.clock(),
	})
	if err != nil {
		return nil, err
	}

	return u.logs.ReplaceAttachments(ctx, userID, logID, registrationIDs(attached))
}

func (u *logUsecase) DeleteLog(ctx context.Context, userID int64, logID string) error {
	if logID == "" {
		return entity.ErrLogNotFound
	}
	return u.logs.Delete(ctx, userID, logID)
}

func (u *logUsecase) ConfigurationOptions(ctx context.Context, userID int64, mode entity.TrackingMode, activityID *int32, languageCode string) (*ConfigurationOptions, error) {
	mode, err := entity.ParseTrackingMode(string(mode))
	if err != nil {
		return nil, err
	}

	registrations, err := u.registrations.ListOngoing(ctx, userID, u.clock())
	if err != nil {
		return nil, err
	}
	units, err := u.catalog.ListUnits(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := u.catalog.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	return &ConfigurationOptions{
		Languages:  selectableLanguages(registrations, mode),
		Activities: entity.FilterActivities(entity.Activities, registrations, mode),
		Units:      entity.FilterUnits(units, activityID, entity.NormalizeLanguageCode(languageCode)),
		Tags:       entity.FilterTags(tags, activityID),
	}, nil
}

// selectableLanguages offers every language for personal tracking and the
// union of registered languages otherwise, in registration order.
func selectableLanguages(registrations []entity.ContestRegistration, mode entity.TrackingMode) []entity.Language {
	if mode == entity.TrackingPersonal {
		return append([]entity.Language(nil), entity.Languages...)
	}
	seen := make(map[string]struct{})
	var languages []entity.Language
	for _, reg := range registrations {
		for _, lang := range reg.Languages {
			if _, dup := seen[lang.Code]; dup {
				continue
			}
			seen[lang.Code] = struct{}{}
			languages = append(languages, lang)
		}
	}
	return languages
}

func selectRegistrations(registrations []entity.ContestRegistration, ids []string) ([]entity.ContestRegistration, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	byID := make(map[string]entity.ContestRegistration, len(registrations))
	for _, reg := range registrations {
		byID[reg.ID] = reg
	}
	selection := make([]entity.ContestRegistration, 0, len(ids))
	for _, id := range ids {
		reg, ok := byID[id]
		if !ok {
			return nil, entity.ErrRegistrationNotFound
		}
		selection = append(selection, reg)
	}
	return selection, nil
}

func registrationIDs(registrations []entity.ContestRegistration) []string {
	ids := make([]string, 0, len(registrations))
	for _, reg := range registrations {
		ids = append(ids, reg.ID)
	}
	return ids
}

func durationSeconds(minutes *float64) *int64 {
	if minutes == nil {
		return nil
	}
	seconds := int64(*minutes * 60)
	return &seconds
}
