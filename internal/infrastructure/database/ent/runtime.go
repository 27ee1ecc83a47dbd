// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contest"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/contestregistration"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/immersionlog"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/tag"
	"github.com/lingolog/lingolog/internal/infrastructure/database/ent/unit"
	"github.com/lingolog/lingolog/internal/infrastructure/database/entschema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contestFields := entschema.Contest{}.Fields()
	_ = contestFields
	// contestDescTitle is the schema descriptor for title field.
	contestDescTitle := contestFields[1].Descriptor()
	// contest.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	contest.TitleValidator = contestDescTitle.Validators[0].(func(string) error)
	// contestDescDescription is the schema descriptor for description field.
	contestDescDescription := contestFields[2].Descriptor()
	// contest.DefaultDescription holds the default value on creation for the description field.
	contest.DefaultDescription = contestDescDescription.Default.(string)
	// contestDescOfficial is the schema descriptor for official field.
	contestDescOfficial := contestFields[6].Descriptor()
	// contest.DefaultOfficial holds the default value on creation for the official field.
	contest.DefaultOfficial = contestDescOfficial.Default.(bool)
	// contestDescPrivate is the schema descriptor for private field.
	contestDescPrivate := contestFields[7].Descriptor()
	// contest.DefaultPrivate holds the default value on creation for the private field.
	contest.DefaultPrivate = contestDescPrivate.Default.(bool)
	// contestDescAllowedActivities is the schema descriptor for allowed_activities field.
	contestDescAllowedActivities := contestFields[8].Descriptor()
	// contest.DefaultAllowedActivities holds the default value on creation for the allowed_activities field.
	contest.DefaultAllowedActivities = contestDescAllowedActivities.Default.([]int32)
	// contestDescCreatedAt is the schema descriptor for created_at field.
	contestDescCreatedAt := contestFields[10].Descriptor()
	// contest.DefaultCreatedAt holds the default value on creation for the created_at field.
	contest.DefaultCreatedAt = contestDescCreatedAt.Default.(func() time.Time)
	// contestDescUpdatedAt is the schema descriptor for updated_at field.
	contestDescUpdatedAt := contestFields[11].Descriptor()
	// contest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contest.DefaultUpdatedAt = contestDescUpdatedAt.Default.(func() time.Time)
	// contest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contest.UpdateDefaultUpdatedAt = contestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contestDescID is the schema descriptor for id field.
	contestDescID := contestFields[0].Descriptor()
	// contest.DefaultID holds the default value on creation for the id field.
	contest.DefaultID = contestDescID.Default.(func() uuid.UUID)
	contestregistrationFields := entschema.ContestRegistration{}.Fields()
	_ = contestregistrationFields
	// contestregistrationDescUserDisplayName is the schema descriptor for user_display_name field.
	contestregistrationDescUserDisplayName := contestregistrationFields[3].Descriptor()
	// contestregistration.DefaultUserDisplayName holds the default value on creation for the user_display_name field.
	contestregistration.DefaultUserDisplayName = contestregistrationDescUserDisplayName.Default.(string)
	// contestregistrationDescLanguages is the schema descriptor for languages field.
	contestregistrationDescLanguages := contestregistrationFields[4].Descriptor()
	// contestregistration.DefaultLanguages holds the default value on creation for the languages field.
	contestregistration.DefaultLanguages = contestregistrationDescLanguages.Default.([]string)
	// contestregistrationDescCreatedAt is the schema descriptor for created_at field.
	contestregistrationDescCreatedAt := contestregistrationFields[5].Descriptor()
	// contestregistration.DefaultCreatedAt holds the default value on creation for the created_at field.
	contestregistration.DefaultCreatedAt = contestregistrationDescCreatedAt.Default.(func() time.Time)
	// contestregistrationDescUpdatedAt is the schema descriptor for updated_at field.
	contestregistrationDescUpdatedAt := contestregistrationFields[6].Descriptor()
	// contestregistration.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contestregistration.DefaultUpdatedAt = contestregistrationDescUpdatedAt.Default.(func() time.Time)
	// contestregistration.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contestregistration.UpdateDefaultUpdatedAt = contestregistrationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contestregistrationDescID is the schema descriptor for id field.
	contestregistrationDescID := contestregistrationFields[0].Descriptor()
	// contestregistration.DefaultID holds the default value on creation for the id field.
	contestregistration.DefaultID = contestregistrationDescID.Default.(func() uuid.UUID)
	immersionlogFields := entschema.ImmersionLog{}.Fields()
	_ = immersionlogFields
	// immersionlogDescLanguageCode is the schema descriptor for language_code field.
	immersionlogDescLanguageCode := immersionlogFields[2].Descriptor()
	// immersionlog.LanguageCodeValidator is a validator for the "language_code" field. It is called by the builders before save.
	immersionlog.LanguageCodeValidator = immersionlogDescLanguageCode.Validators[0].(func(string) error)
	// immersionlogDescUnitName is the schema descriptor for unit_name field.
	immersionlogDescUnitName := immersionlogFields[6].Descriptor()
	// immersionlog.DefaultUnitName holds the default value on creation for the unit_name field.
	immersionlog.DefaultUnitName = immersionlogDescUnitName.Default.(string)
	// immersionlogDescTags is the schema descriptor for tags field.
	immersionlogDescTags := immersionlogFields[9].Descriptor()
	// immersionlog.DefaultTags holds the default value on creation for the tags field.
	immersionlog.DefaultTags = immersionlogDescTags.Default.([]string)
	// immersionlogDescDescription is the schema descriptor for description field.
	immersionlogDescDescription := immersionlogFields[10].Descriptor()
	// immersionlog.DefaultDescription holds the default value on creation for the description field.
	immersionlog.DefaultDescription = immersionlogDescDescription.Default.(string)
	// immersionlogDescCreatedAt is the schema descriptor for created_at field.
	immersionlogDescCreatedAt := immersionlogFields[11].Descriptor()
	// immersionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	immersionlog.DefaultCreatedAt = immersionlogDescCreatedAt.Default.(func() time.Time)
	// immersionlogDescUpdatedAt is the schema descriptor for updated_at field.
	immersionlogDescUpdatedAt := immersionlogFields[12].Descriptor()
	// immersionlog.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	immersionlog.DefaultUpdatedAt = immersionlogDescUpdatedAt.Default.(func() time.Time)
	// immersionlog.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	immersionlog.UpdateDefaultUpdatedAt = immersionlogDescUpdatedAt.UpdateDefault.(func() time.Time)
	// immersionlogDescID is the schema descriptor for id field.
	immersionlogDescID := immersionlogFields[0].Descriptor()
	// immersionlog.DefaultID holds the default value on creation for the id field.
	immersionlog.DefaultID = immersionlogDescID.Default.(func() uuid.UUID)
	tagFields := entschema.Tag{}.Fields()
	_ = tagFields
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[1].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = tagDescName.Validators[0].(func(string) error)
	// tagDescID is the schema descriptor for id field.
	tagDescID := tagFields[0].Descriptor()
	// tag.DefaultID holds the default value on creation for the id field.
	tag.DefaultID = tagDescID.Default.(func() uuid.UUID)
	unitFields := entschema.Unit{}.Fields()
	_ = unitFields
	// unitDescName is the schema descriptor for name field.
	unitDescName := unitFields[1].Descriptor()
	// unit.NameValidator is a validator for the "name" field. It is called by the builders before save.
	unit.NameValidator = unitDescName.Validators[0].(func(string) error)
	// unitDescLanguageCode is the schema descriptor for language_code field.
	unitDescLanguageCode := unitFields[3].Descriptor()
	// unit.LanguageCodeValidator is a validator for the "language_code" field. It is called by the builders before save.
	unit.LanguageCodeValidator = unitDescLanguageCode.Validators[0].(func(string) error)
	// unitDescID is the schema descriptor for id field.
	unitDescID := unitFields[0].Descriptor()
	// unit.DefaultID holds the default value on creation for the id field.
	unit.DefaultID = unitDescID.Default.(func() uuid.UUID)
}
