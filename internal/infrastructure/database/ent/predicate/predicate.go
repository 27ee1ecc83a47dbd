// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Contest is the predicate function for contest builders.
type Contest func(*sql.Selector)

// ContestRegistration is the predicate function for contestregistration builders.
type ContestRegistration func(*sql.Selector)

// ImmersionLog is the predicate function for immersionlog builders.
type ImmersionLog func(*sql.Selector)

// LogAttachment is the predicate function for logattachment builders.
type LogAttachment func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)

// Unit is the predicate function for unit builders.
type Unit func(*sql.Selector)
