package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"hospital-food-manager/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched, the same as sending {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// isMalformedBody reports whether a decode error means the body could not be
// read as a JSON object at all. A well-formed object with a mistyped field
// is not malformed; that value is rejected like any other store failure.
func isMalformedBody(err error) bool {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field == ""
	}
	return true
}

// decodeCreateBody decodes a create request and writes the error response
// itself when decoding fails: 400 for a malformed body, 500 for a mistyped
// field. It reports whether the handler should go on.
func decodeCreateBody(w http.ResponseWriter, r *http.Request, dst interface{}, log *logrus.Logger, resource string) bool {
	err := decodeJSON(w, r, dst)
	if err == nil {
		return true
	}

	if isMalformedBody(err) {
		log.WithError(err).Warnf("Invalid %s body", resource)
		response.BadRequest(w, "Invalid request body")
		return false
	}

	log.WithError(err).Errorf("Error creating %s", resource)
	response.InternalServerError(w, "Internal server error")
	return false
}

// pathID parses the {id} route variable. Trailing garbage such as "1abc" is
// rejected rather than read as 1.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
