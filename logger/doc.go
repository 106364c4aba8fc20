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

// Package logger is the central log repository for Sixtyfive. Log entries are
// tagged with the name of the part of the system that produced them (eg.
// "cpu" or "driver") and kept in a bounded list of the most recent entries.
// Identical entries logged one after the other are collapsed and marked with
// a repeat count.
//
// Logging is subject to a Permission. The Allow value always permits logging.
// Other implementations of the Permission interface can be used to silence
// noisy parts of the system, the cpu trace for instance, depending on
// context.
//
// The package level functions operate on the central logger. For testing,
// separate instances can be created with NewLogger().
package logger
