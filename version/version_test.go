// This file is part of Sixtyfive.
//
// Sixtyfive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Sixtyfive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Sixtyfive.  If not, see <https://www.gnu.org/licenses/>.


package version

import (
	"runtime/debug"
	"testing"

	"github.com/ducklingscorp/sixtyfive/test"
)

func TestBuildInfo(t *testing.T) {
	defer fromBuildInfo(debug.ReadBuildInfo())

	fromBuildInfo(nil, false)
	v, r, release := Version()
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")
	test.ExpectFailure(t, release)
	test.ExpectEquality(t, String(), "Sixtyfive local (no revision information)")

	fromBuildInfo(&debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}, true)
	v, r, _ = Version()
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc123+dirty")

	number = "v0.1.0"
	defer func() { number = "" }()
	fromBuildInfo(nil, false)
	v, _, release = Version()
	test.ExpectEquality(t, v, "v0.1.0")
	test.ExpectSuccess(t, release)
	test.ExpectEquality(t, String(), "Sixtyfive v0.1.0")
}
