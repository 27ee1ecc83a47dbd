package mapping

import (
	"strings"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/lingolog/lingolog/internal/entity"
	lingologv1 "github.com/lingolog/lingolog/pkg/api/lingolog/v1"
)

func FromPbContest(in *lingologv1.Contest) *entity.Contest {
	contest := &entity.Contest{
		ID:          in.GetId(),
		Title:       strings.TrimSpace(in.GetTitle()),
		Description: strings.TrimSpace(in.GetDescription()),
		Official:    in.GetOfficial(),
		Private:     in.GetPrivate(),
		AllowedActivities: lo.Map(in.GetAllowedActivities(), func(a *lingologv1.Activity, _ int) entity.Activity {
			return entity.Activity{ID: a.GetId(), Name: a.GetName(), TimeModifier: a.TimeModifier}
		}),
	}
	if in.GetContestStart() != nil {
		contest.ContestStart = in.GetContestStart().AsTime()
	}
	if in.GetContestEnd() != nil {
		contest.ContestEnd = in.GetContestEnd().AsTime()
	}
	if in.GetRegistrationEnd() != nil {
		contest.RegistrationEnd = in.GetRegistrationEnd().AsTime()
	}
	// Wire shape cannot distinguish "all languages" from an empty restriction,
	// so an empty list means unrestricted.
	if langs := in.GetAllowedLanguages(); len(langs) > 0 {
		contest.AllowedLanguages = lo.Map(langs, func(l *lingologv1.Language, _ int) entity.Language {
			return entity.Language{Code: entity.NormalizeLanguageCode(l.GetCode()), Name: l.GetName()}
		})
	}
	return contest
}

func ToPbContest(in *entity.Contest) *lingologv1.Contest {
	return &lingologv1.Contest{
		Id:              in.ID,
		Title:           in.Title,
		Description:     in.Description,
		ContestStart:    timestamppb.New(in.ContestStart),
		ContestEnd:      timestamppb.New(in.ContestEnd),
		RegistrationEnd: timestamppb.New(in.RegistrationEnd),
		Official:        in.Official,
		Private:         in.Private,
		AllowedActivities: lo.Map(in.AllowedActivities, func(a entity.Activity, _ int) *lingologv1.Activity {
			return ToPbActivity(a)
		}),
		AllowedLanguages: lo.Map(in.AllowedLanguages, func(l entity.Language, _ int) *lingologv1.Language {
			return ToPbLanguage(l)
		}),
	}
}

func ToPbRegistration(in *entity.ContestRegistration) *lingologv1.ContestRegistration {
	out := &lingologv1.ContestRegistration{
		Id:              in.ID,
		ContestId:       in.ContestID,
		UserId:          in.UserID,
		UserDisplayName: in.UserDisplayName,
		Languages: lo.Map(in.Languages, func(l entity.Language, _ int) *lingologv1.Language {
			return ToPbLanguage(l)
		}),
	}
	if in.Contest != nil {
		out.Contest = ToPbContest(in.Contest)
	}
	return out
}
