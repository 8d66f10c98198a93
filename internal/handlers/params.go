package handlers

import "net/http"

// userID pulls the authenticated uid placed in the request context by the
// auth middleware.
func userID(r *http.Request) string {
	uid, _ := r.Context().Value("user_id").(string)
	return uid
}
