package auth

// MayMutate reports whether the authenticated caller may mutate a resource
// owned by ownerID. Callers must take ownerID from the persisted resource (or
// from the identity itself for self operations), never from client-supplied
// path or body fields, and must perform no write when this returns false.
func MayMutate(id Identity, ownerID int64) bool {
	return id.UserID == ownerID
}
