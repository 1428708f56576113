package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/laundrify/backoffice/internal/entity"
)

// pathID parses the {id} URL segment. A malformed value resolves to not
// found rather than a validation error, matching how unknown ids behave.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, entity.ErrNotFound
	}

	return id, nil
}

func queryUint(r *http.Request, key string) uint64 {
	v, err := strconv.ParseUint(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0
	}

	return v
}

func queryBoolPtr(r *http.Request, key string) *bool {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &v
}
