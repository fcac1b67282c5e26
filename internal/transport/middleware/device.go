package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordsnap-backend/pkg/ctxutil"
)

// DeviceHeader carries the client-generated device identifier that scopes a library.
const DeviceHeader = "X-Device-Id"

// Device requires a valid device UUID in the X-Device-Id header and stores it
// in the request context. Requests without one are rejected with 401.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseDeviceID(r.Header.Get(DeviceHeader))
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing or invalid "+DeviceHeader+" header")
			return
		}
		ctx := ctxutil.WithDeviceID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func parseDeviceID(raw string) (uuid.UUID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
