package pgglance

import "github.com/gofrs/uuid"

// decodeUUID accepts the 16-byte binary encoding or the canonical textual
// form and renders the canonical lowercase hyphenated form.
func decodeUUID(src []byte) (string, bool) {
	switch len(src) {
	case 16:
		u, err := uuid.FromBytes(src)
		if err != nil {
			return "", false
		}
		return u.String(), true
	case 36:
		u, err := uuid.FromString(string(src))
		if err != nil {
			return "", false
		}
		return u.String(), true
	}
	return "", false
}
