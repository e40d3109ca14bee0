package auth

// CanModify is the ownership predicate: mutation of an owned entity is
// permitted only when the authenticated caller created it. Post delete and
// comment mutation deliberately skip this check, matching the reference
// behavior; callers that do consult it must translate a refusal to
// Forbidden, never NotFound.
func CanModify(callerID, creatorID string) bool {
	return callerID != "" && callerID == creatorID
}
