// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// JSON is valid YAML so the JSON form is re-read as a YAML node to
// keep the field order, then written in block style
func printYaml(handle io.Writer, message interface{}) error {

	j, err := json.Marshal(message)
	if nil != err {
		return err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(j, &node); nil != err {
		return err
	}
	clearStyle(&node)

	b, err := yaml.Marshal(&node)
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s", b)
	return nil
}

func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, n := range node.Content {
		clearStyle(n)
	}
}

func (m *metadata) print(message interface{}) error {
	if m.yaml {
		return printYaml(m.w, message)
	}
	return printJson(m.w, message)
}
