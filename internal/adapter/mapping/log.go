package mapping

import (
	"strings"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/lingolog/lingolog/internal/entity"
	"github.com/lingolog/lingolog/internal/usecase"
	lingologv1 "github.com/lingolog/lingolog/pkg/api/lingolog/v1"
)

func FromPbLogDraft(in *lingologv1.CreateLogRequest) *entity.LogDraft {
	return &entity.LogDraft{
		LanguageCode:            strings.TrimSpace(in.GetLanguageCode()),
		ActivityID:              in.GetActivityId(),
		Amount:                  in.Amount,
		UnitID:                  in.UnitId,
		DurationMinutes:         in.DurationMinutes,
		Tags:                    in.GetTags(),
		Description:             strings.TrimSpace(in.GetDescription()),
		TrackingMode:            entity.TrackingMode(in.GetTrackingMode()),
		SelectedRegistrationIDs: in.GetRegistrationIds(),
	}
}

func ToPbLog(in *entity.Log) *lingologv1.Log {
	return &lingologv1.Log{
		Id:              in.ID,
		UserId:          in.UserID,
		LanguageCode:    in.LanguageCode,
		ActivityId:      in.ActivityID,
		Amount:          in.Amount,
		UnitId:          in.UnitID,
		UnitName:        in.UnitName,
		DurationSeconds: in.DurationSeconds,
		Score:           in.Score,
		Tags:            in.Tags,
		Description:     in.Description,
		RegistrationIds: in.RegistrationIDs,
		CreatedAt:       timestamppb.New(in.CreatedAt),
		UpdatedAt:       timestamppb.New(in.UpdatedAt),
	}
}

func ToPbLanguage(in entity.Language) *lingologv1.Language {
	return &lingologv1.Language{Code: in.Code, Name: in.Name}
}

func ToPbActivity(in entity.Activity) *lingologv1.Activity {
	return &lingologv1.Activity{Id: in.ID, Name: in.Name, TimeModifier: in.TimeModifier}
}

func ToPbUnit(in entity.Unit) *lingologv1.Unit {
	return &lingologv1.Unit{
		Id:            in.ID,
		Name:          in.Name,
		LogActivityId: in.ActivityID,
		LanguageCode:  in.LanguageCode,
		Modifier:      in.Modifier,
	}
}

func ToPbTag(in entity.Tag) *lingologv1.Tag {
	return &lingologv1.Tag{Id: in.ID, Name: in.Name, LogActivityId: in.ActivityID}
}

func ToPbConfigurationOptions(in *usecase.ConfigurationOptions) *lingologv1.ConfigurationOptionsResponse {
	return &lingologv1.ConfigurationOptionsResponse{
		Languages:  lo.Map(in.Languages, func(l entity.Language, _ int) *lingologv1.Language { return ToPbLanguage(l) }),
		Activities: lo.Map(in.Activities, func(a entity.Activity, _ int) *lingologv1.Activity { return ToPbActivity(a) }),
		Units:      lo.Map(in.Units, func(u entity.Unit, _ int) *lingologv1.Unit { return ToPbUnit(u) }),
		Tags:       lo.Map(in.Tags, func(t entity.Tag, _ int) *lingologv1.Tag { return ToPbTag(t) }),
	}
}
