package content

// FilterProjects returns projects in category, preserving order
// CategoryAll (or an empty category) returns every project
func FilterProjects(projects []Project, category Category) []Project {
	if category == "" || category == CategoryAll {
		out := make([]Project, len(projects))
		copy(out, projects)
		return out
	}
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// NextFilter returns the filter after current in display order, wrapping
// Unknown categories restart at the first filter
func NextFilter(current Category) Filter {
	for i, f := range Filters {
		if f.ID == current {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return Filters[0]
}

// FilterLabel returns the display label for a category
func FilterLabel(c Category) string {
	for _, f := range Filters {
		if f.ID == c {
			return f.Label
		}
	}
	return string(c)
}
