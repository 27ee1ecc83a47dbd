package entity

// FilterUnits narrows the unit catalog to what a draft form may offer for the
// selected activity and language. Units are grouped by display name in
// first-seen order; each group contributes the language-specific variant when
// one exists, otherwise its fallback variant, otherwise nothing. A nil
// activity means no activity is selected yet and nothing is offered.
func FilterUnits(units []Unit, activityID *int32, languageCode string) []Unit {
	if activityID == nil {
		return nil
	}

	type variants struct {
		match    *Unit
		fallback *Unit
	}
	groups := make(map[string]*variants)
	var order []string

	for i := range units {
		unit := &units[i]
		if unit.ActivityID != *activityID {
			continue
		}
		group, ok := groups[unit.Name]
		if !ok {
			group = &variants{}
			groups[unit.Name] = group
			order = append(order, unit.Name)
		}
		switch {
		case unit.LanguageCode != nil && *unit.LanguageCode == languageCode:
			if group.match == nil {
				group.match = unit
			}
		case unit.LanguageCode == nil:
			if group.fallback == nil {
				group.fallback = unit
			}
		}
	}

	result := make([]Unit, 0, len(order))
	for _, name := range order {
		group := groups[name]
		switch {
		case group.match != nil:
			result = append(result, *group.match)
		case group.fallback != nil:
			result = append(result, *group.fallback)
		}
	}
	return result
}

// FilterTags narrows the tag catalog to the selected activity, preserving
// catalog order. A nil activity offers nothing.
func FilterTags(tags []Tag, activityID *int32) []Tag {
	if activityID == nil {
		return nil
	}
	result := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		if tag.ActivityID == *activityID {
			result = append(result, tag)
		}
	}
	return result
}

// FilterActivities narrows the activity catalog to what the user's
// registrations allow. Personal tracking is unconstrained; otherwise the
// result is the union of allowed activities across registrations with a
// resolved contest, in catalog order.
func FilterActivities(activities []Activity, registrations []ContestRegistration, mode TrackingMode) []Activity {
	if mode == TrackingPersonal {
		return append([]Activity(nil), activities...)
	}

	allowed := make(map[int32]struct{})
	for _, reg := range registrations {
		if reg.Contest == nil {
			continue
		}
		for _, act := range reg.Contest.AllowedActivities {
			allowed[act.ID] = struct{}{}
		}
	}

	result := make([]Activity, 0, len(activities))
	for _, act := range activities {
		if _, ok := allowed[act.ID]; ok {
			result = append(result, act)
		}
	}
	return result
}
