package oauth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ParseFormToken parses a URL-encoded token response.
// Pairs that fail to decode are dropped; only a body with no decodable pair is an error.
// A numeric "expires" or "expires_in" field is replaced by ExpiresAt = now + N seconds;
// a missing or non-numeric lifetime leaves the token without expiry.
func ParseFormToken(body []byte, now time.Time) (Token, error) {
	// Malformed pairs are skipped; the body fails only when nothing decodes.
	values, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if err != nil && len(values) == 0 {
		return Token{}, errors.Join(ErrDecodeFailed, fmt.Errorf("parse form token: %w", err))
	}

	// A repeated key keeps its last value.
	fields := make(map[string]string, len(values))
	for k, vs := range values {
		fields[k] = vs[len(vs)-1]
	}
	return tokenFromFields(fields, now)
}

// ParseJSONToken parses an RFC 6749 JSON token response.
// Non-string values are kept in Extra in their JSON form.
func ParseJSONToken(body []byte, now time.Time) (Token, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return Token{}, errors.Join(ErrDecodeFailed, fmt.Errorf("parse json token: %w", err))
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			fields[k] = val
		case json.Number:
			fields[k] = val.String()
		case bool:
			fields[k] = strconv.FormatBool(val)
		default:
			data, err := json.Marshal(val)
			if err != nil {
				return Token{}, errors.Join(ErrDecodeFailed, fmt.Errorf("encode field %q: %w", k, err))
			}
			fields[k] = string(data)
		}
	}
	return tokenFromFields(fields, now)
}

// ParseToken detects the response encoding: bodies starting with '{' are parsed
// as JSON, anything else as URL-encoded form data.
func ParseToken(body []byte, now time.Time) (Token, error) {
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return ParseJSONToken(body, now)
	}
	return ParseFormToken(body, now)
}

func tokenFromFields(fields map[string]string, now time.Time) (Token, error) {
	if code := fields["error"]; code != "" {
		return Token{}, &TokenError{
			Code:        code,
			Description: fields["error_description"],
			URI:         fields["error_uri"],
		}
	}

	tok := Token{
		AccessToken:  fields[FieldAccessToken],
		TokenType:    fields[FieldTokenType],
		RefreshToken: fields[FieldRefreshToken],
	}

	for _, key := range []string{FieldExpiresIn, FieldExpires} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if secs, err := strconv.ParseInt(raw, 10, 64); err == nil && secs > 0 {
			tok.ExpiresAt = now.Add(time.Duration(secs) * time.Second)
			delete(fields, key)
			break
		}
	}

	if len(fields) > 0 {
		tok.Extra = fields
	}

	if tok.AccessToken == "" {
		return tok, ErrMissingAccessToken
	}
	return tok, nil
}
