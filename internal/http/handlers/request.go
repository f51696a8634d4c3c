package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"ngoserver/internal/domain"
)

const maxBodyBytes = 100 << 10

var errPayloadTooLarge = errors.New("payload too large")

// payload is a decoded request body. JSON values keep their types; form values are strings.
type payload map[string]any

// decodeBody reads JSON, urlencoded or multipart bodies. Other or missing
// content types yield an empty payload.
func decodeBody(w http.ResponseWriter, r *http.Request) (payload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		out := payload{}
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&out); err != nil {
			if errors.Is(err, io.EOF) {
				return payload{}, nil
			}
			return nil, classifyBodyError(err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			if err == nil {
				err = errors.New("unexpected data after JSON value")
			}
			return nil, classifyBodyError(err)
		}
		return out, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, classifyBodyError(err)
		}
		return formPayload(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, classifyBodyError(err)
		}
		return formPayload(r.MultipartForm.Value), nil
	default:
		return payload{}, nil
	}
}

func classifyBodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errPayloadTooLarge
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
}

func formPayload(values map[string][]string) payload {
	out := make(payload, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// text returns a field as a string. Absent fields are empty; scalars are formatted.
func (p payload) text(key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

// writeBodyError maps a decodeBody failure to a response.
func (a *App) writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errPayloadTooLarge) {
		a.error(w, r, http.StatusRequestEntityTooLarge, msgPayloadTooLarge)
		return
	}
	a.error(w, r, http.StatusBadRequest, msgInvalidPayload)
}
