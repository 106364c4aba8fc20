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

package logger

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

// Allow indicates that the logging request should be allowed.
var Allow Permission = allow{}

// Deny indicates that the logging request should be dropped.
var Deny Permission = deny{}

// PermissionFlag is a Permission that can be switched on and off.
type PermissionFlag bool

// AllowLogging implements the Permission interface.
func (p *PermissionFlag) AllowLogging() bool {
	return p != nil && bool(*p)
}
