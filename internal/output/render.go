// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v2"
)

// Formats lists the accepted --output values. raw is the default and leaves
// the body untouched.
var Formats = []string{"raw", "json", "yaml"}

// ErrNoMatch is returned when a query selects nothing.
var ErrNoMatch = errors.New("query matched nothing")

// Render applies query, a gjson path, and then converts to format. With an
// empty query and raw format the body is returned as is.
func Render(body []byte, format string, query string) ([]byte, error) {
	if query != "" {
		if !gjson.ValidBytes(body) {
			return nil, errors.New("cannot query a body that is not JSON")
		}
		res := gjson.GetBytes(body, query)
		if !res.Exists() {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, query)
		}
		log.Debugf("query %s matched %s", query, res.Type)
		body = []byte(res.Raw)
	}

	switch format {
	case "", "raw":
		return body, nil
	case "json":
		if !gjson.ValidBytes(body) {
			return nil, errors.New("body is not valid JSON")
		}
		return pretty.Pretty(body), nil
	case "yaml":
		if !gjson.ValidBytes(body) {
			return nil, errors.New("body is not valid JSON")
		}
		out, err := yaml.Marshal(gjson.ParseBytes(body).Value())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return out, nil
	}

	return nil, fmt.Errorf("output must be one of %v", Formats)
}
