package telemetry

// The upsert contract shared by every entity kind: load by id if present,
// otherwise create seeded with the caller's id (zero lets storage assign
// one). A caller-supplied non-empty field always wins; an empty field on a
// fresh entity gets a deterministic placeholder derived from the id; an
// existing real value is never re-defaulted. Last writer wins on concurrent
// upserts of the same id.

func fillDefault(current string, supplied string, placeholder string) string {
	if supplied != "" {
		return supplied
	}
	if current != "" {
		return current
	}
	return placeholder
}
