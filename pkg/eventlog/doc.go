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

/*
Package eventlog appends timestamped log events to a named file.

Each Log call opens the file (creating it if it does not exist), appends a single
JSON log line, syncs, and closes - there is no buffering and no rotation. Log is
meant for lazy crash-path logging, where standing up a logging pipeline is not
worth it:

	eventlog.Log("player made an invalid move")            // appends to event.log
	eventlog.Log("player made an invalid move", "game.log") // appends to game.log

Example log line:

	{"z":"01DFBGCFD9WD29SGRJPK8KZKQS","t":1562680638,"m":"player made an invalid move"}

	where z -> event ULID
	      t -> event timestamp
	      m -> event message

LoggedPanic and Check terminate after logging - the log line is durably written
before the panic unwinds.
*/
package eventlog
