package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lingolog/lingolog/internal/entity"
	"github.com/lingolog/lingolog/internal/repository"
)

type fakeLogRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[string]*entity.Log

	detachCalls []detachCall
}

type detachCall struct {
	registrationID string
	languages      []string
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{items: make(map[string]*entity.Log)}
}

func (r *fakeLogRepo) Create(ctx context.Context, log *entity.Log) (*entity.Log, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := cloneLog(log)
	copy.ID = fmt.Sprintf("log-%d", r.seq)
	r.items[copy.ID] = copy
	return cloneLog(copy), nil
}

func (r *fakeLogRepo) GetByID(ctx context.Context, userID int64, id string) (*entity.Log, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return nil, entity.ErrLogNotFound
	}
	return cloneLog(item), nil
}

func (r *fakeLogRepo) List(ctx context.Context, query *repository.ListLogQuery) ([]entity.Log, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var filtered []*entity.Log
	for _, item := range r.items {
		if item.UserID == query.UserID {
			filtered = append(filtered, cloneLog(item))
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].ID < filtered[j].ID
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	result := make([]entity.Log, 0, len(filtered))
	for _, item := range filtered {
		result = append(result, *item)
	}
	return result, int64(len(result)), nil
}

func (r *fakeLogRepo) ReplaceAttachments(ctx context.Context, userID int64, logID string, registrationIDs []string) (*entity.Log, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[logID]
	if !ok || item.UserID != userID {
		return nil, entity.ErrLogNotFound
	}
	item.RegistrationIDs = append([]string(nil), registrationIDs...)
	return cloneLog(item), nil
}

func (r *fakeLogRepo) Delete(ctx context.Context, userID int64, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return entity.ErrLogNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeLogRepo) DetachRegistration(ctx context.Context, registrationID string, languageCodes []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detachCalls = append(r.detachCalls, detachCall{
		registrationID: registrationID,
		languages:      append([]string(nil), languageCodes...),
	})
	for _, item := range r.items {
		if !contains(languageCodes, item.LanguageCode) {
			continue
		}
		kept := item.RegistrationIDs[:0]
		for _, id := range item.RegistrationIDs {
			if id != registrationID {
				kept = append(kept, id)
			}
		}
		item.RegistrationIDs = kept
	}
	return nil
}

func contains(values []string, needle string) bool {
	for _, v := range values {
		if v == needle {
			return true
		}
	}
	return false
}

func cloneLog(src *entity.Log) *entity.Log {
	if src == nil {
		return nil
	}
	copy := *src
	if src.Tags != nil {
		copy.Tags = append([]string(nil), src.Tags...)
	}
	if src.RegistrationIDs != nil {
		copy.RegistrationIDs = append([]string(nil), src.RegistrationIDs...)
	}
	return &copy
}

type fakeRegistrationRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[string]*entity.ContestRegistration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{items: make(map[string]*entity.ContestRegistration)}
}

func (r *fakeRegistrationRepo) Create(ctx context.Context, registration *entity.ContestRegistration) (*entity.ContestRegistration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := cloneRegistration(registration)
	if copy.ID == "" {
		copy.ID = fmt.Sprintf("reg-%d", r.seq)
	}
	r.items[copy.ID] = copy
	return cloneRegistration(copy), nil
}

func (r *fakeRegistrationRepo) GetByID(ctx context.Context, userID int64, id string) (*entity.ContestRegistration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return nil, entity.ErrRegistrationNotFound
	}
	return cloneRegistration(item), nil
}

func (r *fakeRegistrationRepo) FindByContest(ctx context.Context, userID int64, contestID string) (*entity.ContestRegistration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.UserID == userID && item.ContestID == contestID {
			return cloneRegistration(item), nil
		}
	}
	return nil, nil
}

func (r *fakeRegistrationRepo) ListByUser(ctx context.Context, userID int64) ([]entity.ContestRegistration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.ContestRegistration
	for _, item := range r.items {
		if item.UserID == userID {
			result = append(result, *cloneRegistration(item))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeRegistrationRepo) ListOngoing(ctx context.Context, userID int64, now time.Time) ([]entity.ContestRegistration, error) {
	all, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var result []entity.ContestRegistration
	for _, reg := range all {
		if reg.Contest != nil && reg.Contest.Running(now) {
			result = append(result, reg)
		}
	}
	return result, nil
}

func (r *fakeRegistrationRepo) Delete(ctx context.Context, userID int64, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return entity.ErrRegistrationNotFound
	}
	delete(r.items, id)
	return nil
}

func cloneRegistration(src *entity.ContestRegistration) *entity.ContestRegistration {
	if src == nil {
		return nil
	}
	copy := *src
	if src.Languages != nil {
		copy.Languages = append([]entity.Language(nil), src.Languages...)
	}
	return &copy
}

type fakeContestRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[string]*entity.Contest
}

func newFakeContestRepo() *fakeContestRepo {
	return &fakeContestRepo{items: make(map[string]*entity.Contest)}
}

func (r *fakeContestRepo) Create(ctx context.Context, contest *entity.Contest) (*entity.Contest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := *contest
	if copy.ID == "" {
		copy.ID = fmt.Sprintf("contest-%d", r.seq)
	}
	r.items[copy.ID] = &copy
	result := copy
	return &result, nil
}

func (r *fakeContestRepo) GetByID(ctx context.Context, id string) (*entity.Contest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, entity.ErrContestNotFound
	}
	copy := *item
	return &copy, nil
}

func (r *fakeContestRepo) List(ctx context.Context, query *repository.ListContestQuery) ([]entity.Contest, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.Contest
	for _, item := range r.items {
		if query != nil && query.OfficialOnly && !item.Official {
			continue
		}
		if query != nil && !query.IncludePrivate && item.Private {
			continue
		}
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

type fakeCatalogRepo struct {
	mu    sync.RWMutex
	units []entity.Unit
	tags  []entity.Tag
}

func newFakeCatalogRepo(units []entity.Unit, tags []entity.Tag) *fakeCatalogRepo {
	return &fakeCatalogRepo{units: units, tags: tags}
}

func (r *fakeCatalogRepo) ListUnits(ctx context.Context) ([]entity.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Unit(nil), r.units...), nil
}

func (r *fakeCatalogRepo) ListTags(ctx context.Context) ([]entity.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Tag(nil), r.tags...), nil
}

func (r *fakeCatalogRepo) GetUnit(ctx context.Context, id string) (*entity.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, unit := range r.units {
		if unit.ID == id {
			copy := unit
			return &copy, nil
		}
	}
	return nil, entity.ErrUnitNotFound
}

func (r *fakeCatalogRepo) SeedCatalog(ctx context.Context, units []entity.Unit, tags []entity.Tag) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units = append([]entity.Unit(nil), units...)
	r.tags = append([]entity.Tag(nil), tags...)
	return nil
}

type fakeLeaderboardRepo struct {
	mu   sync.RWMutex
	rows map[string][]entity.ScoreRow
}

func newFakeLeaderboardRepo() *fakeLeaderboardRepo {
	return &fakeLeaderboardRepo{rows: make(map[string][]entity.ScoreRow)}
}

func (r *fakeLeaderboardRepo) add(contestID string, rows ...entity.ScoreRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[contestID] = append(r.rows[contestID], rows...)
}

func (r *fakeLeaderboardRepo) ContestScores(ctx context.Context, query *repository.ScoreQuery) ([]entity.ScoreRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.ScoreRow
	for _, row := range r.rows[query.ContestID] {
		if query.LanguageCode != "" && row.LanguageCode != query.LanguageCode {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}
