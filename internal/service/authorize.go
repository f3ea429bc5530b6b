package service

// Authorize decides whether the acting principal may mutate a resource
// owned by ownerEmail. The comparison is a case-sensitive exact match on
// the login email.
//
// An empty actingEmail means no authenticated principal is attached to the
// call; that happens only on system-level bootstrap paths, which are
// allowed through.
func Authorize(actingEmail, ownerEmail string) error {
	if actingEmail == "" {
		return nil
	}

	if actingEmail != ownerEmail {
		return ErrForbidden
	}

	return nil
}
