package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/WillZhangFly/one-second/internal"
	"github.com/WillZhangFly/one-second/internal/logger"
	"github.com/WillZhangFly/one-second/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	types.RegisterTypeValidation(v)
	return v
}

type handler struct {
	Path       string
	HTTPMethod string
	Handler    http.Handler
}

var handlers = []*handler{
	{
		Path:       "/v1/format",
		HTTPMethod: "POST",
		Handler:    &formatHandler{},
	},
	{
		Path:       "/v1/parse",
		HTTPMethod: "POST",
		Handler:    &parseHandler{},
	},
	{
		Path:       "/v1/sequence",
		HTTPMethod: "POST",
		Handler:    &sequenceHandler{},
	},
	{
		Path:       "/v1/tokens",
		HTTPMethod: "GET",
		Handler:    &tokensHandler{},
	},
	{
		Path:       "/v1/locales",
		HTTPMethod: "GET",
		Handler:    &localesListHandler{},
	},
	{
		Path:       "/v1/locales/{localeId}",
		HTTPMethod: "GET",
		Handler:    &localesGetHandler{},
	},
}

func encodeResponse(ctx context.Context, w http.ResponseWriter, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Logger(ctx).Error("failed to encode response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintln(w, err.Error())
	}
}

func errorResponse(ctx context.Context, w http.ResponseWriter, e *ServerError) {
	logger.Logger(ctx).Error(e.Message, zap.String("reason", string(e.Reason)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	w.Write(e.Response())
}

func decodeParams(r *http.Request, params interface{}) *ServerError {
	if err := json.NewDecoder(r.Body).Decode(params); err != nil {
		return errInvalid(fmt.Sprintf("failed to decode request: %s", err))
	}
	return nil
}

type formatHandler struct{}

type formatParams struct {
	Template string `json:"template"`
	Instant  string `json:"instant"`
	Locale   string `json:"locale"`
}

type formatRequest struct {
	server *Server
	params *formatParams
}

type formatResponse struct {
	Text   string `json:"text"`
	Locale string `json:"locale"`
}

func (h *formatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	server := serverFromContext(ctx)
	var params formatParams
	if serverErr := decodeParams(r, &params); serverErr != nil {
		errorResponse(ctx, w, serverErr)
		return
	}
	res, serverErr := h.Handle(ctx, &formatRequest{
		server: server,
		params: &params,
	})
	if serverErr != nil {
		errorResponse(ctx, w, serverErr)
		return
	}
	encodeResponse(ctx, w, res)
}

func (h *formatHandler) Handle(ctx context.Context, r *formatRequest) (*formatResponse, *ServerError) {
	p := r.params
	if p.Instant == "" {
		return nil, errInvalid("instant is required")
	}
	instant, err := time.Parse(time.RFC3339Nano, p.Instant)
	if err != nil {
		return nil, errInvalid(fmt.Sprintf("failed to parse instant: %s", err))
	}
	localeTag := r.server.resolveLocaleTag(p.Locale)
	return &formatResponse{
		Text:   internal.Format(p.Template, instant, localeTag),
		Locale: internal.LookupLocale(localeTag).Tag(),
	}, nil
}

type parseHandler struct{}

type parseParams struct {
	Template string `json:"template"`
	Text     string `json:"text"`
	Locale   string `json:"locale"`
}

type parseRequest struct {
	server *Server
	params *parseParams
}

type parseResponse struct {
	Instant string       `json:"instant"`
	Locale  string       `json:"locale"`
	Fields  *parseFields `json:"fields"`
}

// parseFields reports the calendar fields recovered from the text before
// they were composed into an instant. Month is zero-based.
type parseFields struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Hour        int    `json:"hour"`
	Hour12      *int   `json:"hour12,omitempty"`
	Minute      int    `json:"minute"`
	Second      int    `json:"second"`
	Millisecond int    `json:"millisecond"`
	Meridiem    string `json:"meridiem,omitempty"`
	Weekday     *int   `json:"weekday,omitempty"`
}

func (h *parseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	server := serverFromContext(ctx)
	var params parseParams
	if serverErr := decodeParams(r, &params); serverErr != nil {
		errorResponse(ctx, w, serverErr)
		return
	}
	res, serverErr := h.Handle(ctx, &parseRequest{
		server: server,
		params: &params,
	})
	if serverErr != nil {
		errorResponse(ctx, w, serverErr)
		return
	}
	encodeResponse(ctx, w, res)
}

func (h *parseHandler) Handle(ctx context.Context, r *parseRequest) (*parseResponse, *ServerError) {
	p := r.params
	localeTag := r.server.resolveLocaleTag(p.Locale)
	rec, err := internal.ParseFields(p.Template, p.Text, localeTag)
	if err != nil {
		if errors.Is(err, internal.ErrNoMatch) {
			return nil, errNoMatch(err.Error())
		}
		return nil, errInvalid(err.Error())
	}
	fields := &parseFields{
		Year:        rec.Year,
		Month:       rec.Month,
		Day:         rec.Day,
		Hour:        rec.Hour,
		Minute:      rec.Minute,
		Second:      rec.Second,
		Millisecond: rec.Millisecond,
	}
	if rec.HasHour12 {
		hour12 := rec.Hour12
		fields.Hour12 = &hour12
	}
	if rec.Meridiem != internal.MeridiemUnset {
		fields.Meridiem = rec.Meridiem.String()
	}
	if rec.HasWeekday {
		weekday := rec.Weekday
		fields.Weekday = &weekday
	}
	return &parseResponse{
		Instant: rec.Instant(time.UTC).Format(time.RFC3339Nano),
		Locale:  internal.LookupLocale(localeTag).Tag(),
		Fields:  fields,
	}, nil
}

type sequenceHandler struct{}

// maxSequenceLen bounds one sequence response. The guard compares the
// boundary count, so a run right at the limit may include one extra entry.
const maxSequenceLen = 10000

type sequenceParams struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
	Unit string `json:"unit" validate:"required,unit"`
}

type sequenceRequest struct {
	server *Server
	params *sequenceParams
}

type sequenceResponse struct {
	Instants []string `json:"instants"`
}

func (h *sequenceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	server := serverFromContext(ctx)
	var params sequenceParams
	if serverErr := decodeParams(r, &params); serverErr != nil {
		errorResponse(ctx, w, serverErr)
		return
	}
	res, serverErr := h.Handle(ctx, &sequenceRequest{
		server: server,
		params: &params,
	})
	if serverErr != nil {
		errorResponse(ctx, w, serverErr)
		return
	}
	encodeResponse(ctx, w, res)
}

func (h *sequenceHandler) Handle(ctx context.Context, r *sequenceRequest) (*sequenceResponse, *ServerError) {
	p := r.params
	if err := validate.Struct(p); err != nil {
		return nil, errInvalid(err.Error())
	}
	from, err := time.Parse(time.RFC3339Nano, p.From)
	if err != nil {
		return nil, errInvalid(fmt.Sprintf("failed to parse from: %s", err))
	}
	to, err := time.Parse(time.RFC3339Nano, p.To)
	if err != nil {
		return nil, errInvalid(fmt.Sprintf("failed to parse to: %s", err))
	}
	unit := types.NormalizeUnit(p.Unit)
	if internal.Diff(from, to, unit) >= maxSequenceLen {
		return nil, errInvalid(fmt.Sprintf("sequence by %s from %s to %s exceeds %d entries", unit, p.From, p.To, maxSequenceLen))
	}
	seq := internal.Sequence(from, to, unit)
	instants := make([]string, len(seq))
	for i, t := range seq {
		instants[i] = t.Format(time.RFC3339Nano)
	}
	return &sequenceResponse{Instants: instants}, nil
}

type tokensHandler struct{}

type tokensRequest struct {
	server *Server
}

type tokensResponse struct {
	Tokens []*tokenInfo `json:"tokens"`
}

type tokenInfo struct {
	Token   string `json:"token"`
	Field   string `json:"field"`
	Example string `json:"example"`
}

// exampleInstant renders the token examples. Monday afternoon exercises the
// weekday, twelve-hour and meridiem tokens with distinct values.
var exampleInstant = time.Date(2024, time.January, 15, 13, 30, 45, 123000000, time.UTC)

func (h *tokensHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	server := serverFromContext(ctx)
	res, serverErr := h.Handle(ctx, &tokensRequest{server: server})
	if serverErr != nil {
		errorResponse(ctx, w, serverErr)
		return
	}
	encodeResponse(ctx, w, res)
}

func (h *tokensHandler) Handle(ctx context.Context, r *tokensRequest) (*tokensResponse, *ServerError) {
	localeTag := r.server.resolveLocaleTag("")
	catalog := internal.Catalog()
	tokens := make([]*tokenInfo, len(catalog))
	for i, def := range catalog {
		tokens[i] = &tokenInfo{
			Token:   def.Text,
			Field:   string(def.Field),
			Example: internal.Format(def.Text, exampleInstant, localeTag),
		}
	}
	return &tokensResponse{Tokens: tokens}, nil
}

type localesListHandler struct{}

type localesListRequest struct {
	server *Server
}

type localesListResponse struct {
	Locales []string `json:"locales"`
}

func (h *localesListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	server := serverFromContext(ctx)
	res, serverErr := h.Handle(ctx, &localesListRequest{server: server})
	if serverErr != nil {
		errorResponse(ctx, w, serverErr)
		return
	}
	encodeResponse(ctx, w, res)
}

func (h *localesListHandler) Handle(ctx context.Context, r *localesListRequest) (*localesListResponse, *ServerError) {
	return &localesListResponse{Locales: internal.Locales()}, nil
}

type localesGetHandler struct{}

type localesGetRequest struct {
	server *Server
	locale *internal.Locale
}

type localeResponse struct {
	ID            string   `json:"id"`
	Months        []string `json:"months"`
	MonthsShort   []string `json:"monthsShort"`
	Weekdays      []string `json:"weekdays"`
	WeekdaysShort []string `json:"weekdaysShort"`
	Meridiems     []string `json:"meridiems"`
}

func (h *localesGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	server := serverFromContext(ctx)
	locale := localeFromContext(ctx)
	res, serverErr := h.Handle(ctx, &localesGetRequest{
		server: server,
		locale: locale,
	})
	if serverErr != nil {
		errorResponse(ctx, w, serverErr)
		return
	}
	encodeResponse(ctx, w, res)
}

func (h *localesGetHandler) Handle(ctx context.Context, r *localesGetRequest) (*localeResponse, *ServerError) {
	loc := r.locale
	return &localeResponse{
		ID:            loc.Tag(),
		Months:        loc.MonthNames(internal.StyleLong),
		MonthsShort:   loc.MonthNames(internal.StyleShort),
		Weekdays:      loc.WeekdayNames(internal.StyleLong),
		WeekdaysShort: loc.WeekdayNames(internal.StyleShort),
		Meridiems:     loc.MeridiemNames(),
	}, nil
}

type defaultHandler struct{}

func (h *defaultHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	errorResponse(r.Context(), w, errNotFound(fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path)))
}
