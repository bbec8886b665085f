package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// validate collects errors and returns a *ValidationError if any exist.
func validate(checks ...func() string) error {
	var errs []string
	for _, check := range checks {
		if msg := check(); msg != "" {
			errs = append(errs, msg)
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func requirePresent(field string, value *StationID) string {
	if value == nil {
		return fmt.Sprintf("%s is required", field)
	}
	return ""
}

// StationID is a station identifier. It decodes from a JSON integer or a
// decimal string, so both {"source": 1} and {"source": "1"} are accepted.
type StationID int64

func (id *StationID) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid station id %s", data)
	}
	*id = StationID(n)
	return nil
}

// FavoriteRequest is the decoded body of a favorite creation request.
// Absent fields stay nil.
type FavoriteRequest struct {
	Source *StationID `json:"source"`
	Target *StationID `json:"target"`
}

// NewFavoriteRequest builds a request with both fields present.
func NewFavoriteRequest(source, target int64) FavoriteRequest {
	s, t := StationID(source), StationID(target)
	return FavoriteRequest{Source: &s, Target: &t}
}

// Route is a FavoriteRequest whose fields are known to be present.
type Route struct {
	Source int64
	Target int64
}

// Validate checks that both stations are present and returns them as a Route.
// Missing fields fail with KindMissingField.
func (r FavoriteRequest) Validate() (Route, error) {
	err := validate(
		func() string { return requirePresent("source", r.Source) },
		func() string { return requirePresent("target", r.Target) },
	)
	if err != nil {
		return Route{}, &Error{Kind: KindMissingField, Err: err}
	}
	return Route{Source: int64(*r.Source), Target: int64(*r.Target)}, nil
}

// SameSourceAndTarget reports whether the request points source and target at
// the same station.
func (r FavoriteRequest) SameSourceAndTarget() (bool, error) {
	route, err := r.Validate()
	if err != nil {
		return false, err
	}
	return route.Source == route.Target, nil
}
