/*
 * Copyright (c) 2019 OysterPack, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"flag"
	"fmt"
	"github.com/oklog/ulid"
	"github.com/oysterpack/dynerr/pkg/ulidgen"
	"log"
	"time"
)

var id = flag.String("p", "", "parse ULID")
var verbose = flag.Bool("v", false, "shows ULID components (Time, Entropy)")
var help = flag.Bool("h", false, "prints help")

// used to generate and parse the ULIDs used as error and event IDs
//
// Command Line Flags
//  -p is used to specify a ULID to parse
//  -v shows ULID components (Time, Entropy)
func main() {
	flag.Parse()
	if *help {
		fmt.Println(`errid is a tool used to generate or parse a ULID (https://github.com/oklog/ulid)

Usage:

   errid [-p ULID] [-v]

   when the -p flag is not specified, then it will generate a new ULID

Flags:`)
		flag.PrintDefaults()
		return
	}

	if *id != "" {
		parseULID(*id)
		return
	}
	// generate a new ULID
	print(ulidgen.MustNew())
}

func parseULID(id string) {
	id2, err := ulidgen.Parse(id)
	if err != nil {
		log.Fatal(err)
	}
	print(id2)
}

func print(id ulid.ULID) {
	if *verbose {
		fmt.Printf("%v -> Time(%s) Entropy(%x)\n", id, ulid.Time(id.Time()).UTC().Format(time.RFC3339), id.Entropy())
		return
	}
	fmt.Println(id)
}
