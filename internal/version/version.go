// seehuhn.de/go/scanfill - scan-line polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package version holds the release version of the scanfill command.
package version

import "runtime"

// Version is the release version.  Release builds override it with
// -ldflags "-X seehuhn.de/go/scanfill/internal/version.Version=...".
var Version = "0.1.0-dev"

// String returns the version together with the Go toolchain version.
func String() string {
	return Version + " (" + runtime.Version() + ")"
}
