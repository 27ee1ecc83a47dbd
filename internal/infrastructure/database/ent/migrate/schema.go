// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContestsColumns holds the columns for the "contests" table.
	ContestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "contest_start", Type: field.TypeTime},
		{Name: "contest_end", Type: field.TypeTime},
		{Name: "registration_end", Type: field.TypeTime},
		{Name: "official", Type: field.TypeBool, Default: false},
		{Name: "private", Type: field.TypeBool, Default: false},
		{Name: "allowed_activities", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "allowed_languages", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContestsTable holds the schema information for the "contests" table.
	ContestsTable = &schema.Table{
		Name:       "contests",
		Columns:    ContestsColumns,
		PrimaryKey: []*schema.Column{ContestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contest_official_private",
				Unique:  false,
				Columns: []*schema.Column{ContestsColumns[6], ContestsColumns[7]},
			},
			{
				Name:    "contest_contest_end",
				Unique:  false,
				Columns: []*schema.Column{ContestsColumns[4]},
			},
		},
	}
	// ContestRegistrationsColumns holds the columns for the "contest_registrations" table.
	ContestRegistrationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "user_display_name", Type: field.TypeString, Default: ""},
		{Name: "languages", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "contest_id", Type: field.TypeUUID},
	}
	// ContestRegistrationsTable holds the schema information for the "contest_registrations" table.
	ContestRegistrationsTable = &schema.Table{
		Name:       "contest_registrations",
		Columns:    ContestRegistrationsColumns,
		PrimaryKey: []*schema.Column{ContestRegistrationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contest_registrations_contests_registrations",
				Columns:    []*schema.Column{ContestRegistrationsColumns[6]},
				RefColumns: []*schema.Column{ContestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contestregistration_user_id_contest_id",
				Unique:  true,
				Columns: []*schema.Column{ContestRegistrationsColumns[1], ContestRegistrationsColumns[6]},
			},
		},
	}
	// ImmersionLogsColumns holds the columns for the "immersion_logs" table.
	ImmersionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "language_code", Type: field.TypeString, Size: 3},
		{Name: "activity_id", Type: field.TypeInt32},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true},
		{Name: "unit_id", Type: field.TypeUUID, Nullable: true},
		{Name: "unit_name", Type: field.TypeString, Default: ""},
		{Name: "duration_seconds", Type: field.TypeInt64, Nullable: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "tags", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ImmersionLogsTable holds the schema information for the "immersion_logs" table.
	ImmersionLogsTable = &schema.Table{
		Name:       "immersion_logs",
		Columns:    ImmersionLogsColumns,
		PrimaryKey: []*schema.Column{ImmersionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "immersionlog_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImmersionLogsColumns[1], ImmersionLogsColumns[11]},
			},
			{
				Name:    "immersionlog_user_id_language_code",
				Unique:  false,
				Columns: []*schema.Column{ImmersionLogsColumns[1], ImmersionLogsColumns[2]},
			},
		},
	}
	// LogAttachmentsColumns holds the columns for the "log_attachments" table.
	LogAttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "registration_id", Type: field.TypeUUID},
		{Name: "log_id", Type: field.TypeUUID},
	}
	// LogAttachmentsTable holds the schema information for the "log_attachments" table.
	LogAttachmentsTable = &schema.Table{
		Name:       "log_attachments",
		Columns:    LogAttachmentsColumns,
		PrimaryKey: []*schema.Column{LogAttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "log_attachments_contest_registrations_attachments",
				Columns:    []*schema.Column{LogAttachmentsColumns[1]},
				RefColumns: []*schema.Column{ContestRegistrationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "log_attachments_immersion_logs_attachments",
				Columns:    []*schema.Column{LogAttachmentsColumns[2]},
				RefColumns: []*schema.Column{ImmersionLogsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "logattachment_log_id_registration_id",
				Unique:  true,
				Columns: []*schema.Column{LogAttachmentsColumns[2], LogAttachmentsColumns[1]},
			},
			{
				Name:    "logattachment_registration_id",
				Unique:  false,
				Columns: []*schema.Column{LogAttachmentsColumns[1]},
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeInt32},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tag_activity_id_name",
				Unique:  true,
				Columns: []*schema.Column{TagsColumns[2], TagsColumns[1]},
			},
		},
	}
	// UnitsColumns holds the columns for the "units" table.
	UnitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeInt32},
		{Name: "language_code", Type: field.TypeString, Nullable: true, Size: 3},
		{Name: "modifier", Type: field.TypeFloat64},
	}
	// UnitsTable holds the schema information for the "units" table.
	UnitsTable = &schema.Table{
		Name:       "units",
		Columns:    UnitsColumns,
		PrimaryKey: []*schema.Column{UnitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unit_activity_id_name",
				Unique:  false,
				Columns: []*schema.Column{UnitsColumns[2], UnitsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContestsTable,
		ContestRegistrationsTable,
		ImmersionLogsTable,
		LogAttachmentsTable,
		TagsTable,
		UnitsTable,
	}
)

func init() {
	ContestsTable.Annotation = &entsql.Annotation{
		Table: "contests",
	}
	ContestRegistrationsTable.ForeignKeys[0].RefTable = ContestsTable
	ContestRegistrationsTable.Annotation = &entsql.Annotation{
		Table: "contest_registrations",
	}
	ImmersionLogsTable.Annotation = &entsql.Annotation{
		Table: "immersion_logs",
	}
	LogAttachmentsTable.ForeignKeys[0].RefTable = ContestRegistrationsTable
	LogAttachmentsTable.ForeignKeys[1].RefTable = ImmersionLogsTable
	LogAttachmentsTable.Annotation = &entsql.Annotation{
		Table: "log_attachments",
	}
	TagsTable.Annotation = &entsql.Annotation{
		Table: "tags",
	}
	UnitsTable.Annotation = &entsql.Annotation{
		Table: "units",
	}
}
