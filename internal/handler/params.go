package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gymkit/api/internal/model"
)

const dateLayout = "2006-01-02"

// parseDateParam reads an optional date query parameter. Both plain dates
// and RFC 3339 timestamps are accepted.
func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date (%s) or RFC 3339 timestamp", name, dateLayout)
	}
	return &t, nil
}

// parseTrainingFilter builds a training filter from query parameters. The
// counterparty name arrives under nameParam, which differs between trainee
// and trainer listings.
func parseTrainingFilter(r *http.Request, nameParam string) (model.TrainingFilter, *model.ProblemDetails) {
	var filter model.TrainingFilter

	from, err := parseDateParam(r, "from")
	if err != nil {
		return filter, model.NewBadRequestError(err.Error())
	}
	to, err := parseDateParam(r, "to")
	if err != nil {
		return filter, model.NewBadRequestError(err.Error())
	}

	filter.From = from
	filter.To = to
	filter.Name = r.URL.Query().Get(nameParam)
	filter.TypeID = r.URL.Query().Get("type_id")

	return filter, nil
}
