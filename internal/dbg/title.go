// Copyright 2026 The abiguess Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dbg

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser renders a debug field label the way a generated Go struct
// field would read, without lower-casing an already-cased word (so "ID"
// stays "ID" rather than becoming "Id").
var titleCaser = cases.Title(language.English, cases.NoLower)

// FieldName renders the i'th positional argument of a tuple as a debug
// field label, e.g. FieldName(0) is "Arg0".
func FieldName(i int) string {
	return titleCaser.String(fmt.Sprintf("arg%d", i))
}
