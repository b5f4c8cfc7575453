/* Copyright 2018 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package testutil

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/rsklar/caspar/cd"
)

// JS renders its argument as JSON or as a string indicating an error.
func JS(x interface{}) string {
	bs, err := json.Marshal(&x)
	if err != nil {
		log.Printf("warning: testutil.JS error %s for %#v", err, x)
		return fmt.Sprintf("%#v", x)
	}
	return string(bs)
}

// Dwims, when given a string or bytes, parses that data as a CD form.
// When given a Form, just returns what's given.
//
// See https://en.wikipedia.org/wiki/DWIM.
func Dwims(x interface{}) cd.Form {
	switch vv := x.(type) {
	case []byte:
		return Dwims(string(vv))
	case string:
		f, err := cd.Parse(vv)
		if err != nil {
			panic(err)
		}
		return f
	case cd.Form:
		return vv
	default:
		panic(fmt.Sprintf("testutil.Dwims can't deal with %#v", x))
	}
}
