package auth

import (
	"fmt"
	"net/http"

	"fwadmin/internal/database"
	"fwadmin/internal/registry"

	"golang.org/x/sync/singleflight"
)

// groupLookups collapses concurrent membership queries for the same user so
// a burst of requests from one session hits the database once.
var groupLookups singleflight.Group

// CallerFromRequest resolves the request's bearer token into the identity
// value the registry consumes. An unauthenticated request yields the
// anonymous caller and no error; token decoding failures count as
// unauthenticated.
func CallerFromRequest(r *http.Request) registry.Caller {
	userID, err := GetUserIDFromRequest(r)
	if err != nil {
		return registry.Anonymous
	}

	groups, err, _ := groupLookups.Do(fmt.Sprintf("groups-%d", userID), func() (interface{}, error) {
		return database.GroupNamesForUser(userID)
	})
	if err != nil {
		// Identity without memberships still names the caller; policy will
		// deny group-gated actions.
		return registry.Caller{ID: userID}
	}

	return registry.Caller{
		ID:     userID,
		Groups: groups.([]string),
	}
}
