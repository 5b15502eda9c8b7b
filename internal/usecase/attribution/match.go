// Package attribution infers which tasks other users created for the caller.
//
// There is no assignment key between users and tasks. A task counts as
// "assigned to me" when its person's name equals the caller's username or
// display name, compared after trimming and lowercasing.
package attribution

import (
	"strings"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
)

// normalizeName trims and lowercases a name for comparison
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// identityNames returns the normalized names a user is known by
func identityNames(user *entities.User) map[string]struct{} {
	names := make(map[string]struct{}, 2)
	if n := normalizeName(user.Username); n != "" {
		names[n] = struct{}{}
	}
	if user.DisplayName != nil {
		if n := normalizeName(*user.DisplayName); n != "" {
			names[n] = struct{}{}
		}
	}
	return names
}

// MatchPersonIDs returns the ids of people, across every owner, whose name
// equals one of the user's names. Order follows people.
func MatchPersonIDs(user *entities.User, people []repositories.PersonIdentity) []uint {
	names := identityNames(user)
	if len(names) == 0 {
		return nil
	}

	var ids []uint
	for _, p := range people {
		if _, ok := names[normalizeName(p.Name)]; ok {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// hasPersonNamed reports whether people contains someone called like the user
func hasPersonNamed(people []*entities.Person, user *entities.User) bool {
	names := identityNames(user)
	for _, p := range people {
		if _, ok := names[normalizeName(p.Name)]; ok {
			return true
		}
	}
	return false
}
