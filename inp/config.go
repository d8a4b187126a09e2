// Copyright 2026 The Vegas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/odarbelaeze/vegas/verr"
)

// Parse deserializes a TOML configuration from r. Any malformed
// configuration surfaces as a verr.ConfigParse error.
func Parse(r io.Reader) (Input, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return Input{}, verr.Wrap(verr.IOFailure, err, "reading configuration")
	}
	var in Input
	if err := toml.Unmarshal(body, &in); err != nil {
		return Input{}, verr.Wrap(verr.ConfigParse, err, "parsing configuration")
	}
	return in, nil
}

// Marshal serializes a configuration back to its TOML form.
func Marshal(in Input) ([]byte, error) {
	body, err := toml.Marshal(in)
	if err != nil {
		return nil, verr.Wrap(verr.ConfigParse, err, "serializing configuration")
	}
	return body, nil
}
