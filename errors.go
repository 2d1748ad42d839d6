/*
 * errors.go, part of rosusc.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package rosusc

import (
	"errors"
	"fmt"
)

//Error is the error type returned by the functions of this package. Besides a message,
//it records the file that caused the problem (if any), a trail of the functions the error
//went through, and whether the problem is critical for the whole stage or only for one protein.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

//NewError returns an Error with the given message, file and criticality, decorated
//with the name of the function that created it.
func NewError(message, filename, function string, critical bool) Error {
	return Error{message, filename, []string{function}, critical}
}

func (err Error) Error() string {
	if err.filename == "" {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.filename, err.message)
}

//Decorate adds new information to the error trail and returns the trail.
//An empty string only returns the current trail.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error, or an empty string.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error should stop the stage, false if it only
//concerns one protein.
func (err Error) Critical() bool { return err.critical }

//errDecorate adds caller to the trail of err if it is an Error, and returns
//the (possibly updated) error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.deco = append(e.deco, caller)
		return e
	}
	return err
}

//IsCritical returns true unless err is an Error flagged as non-critical.
func IsCritical(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.critical
	}
	return err != nil
}

const (
	ErrUnableToOpen   = "Unable to open file"
	ErrNoAtoms        = "No ATOM or HETATM records found"
	ErrMalformedLine  = "Malformed coordinate record"
	ErrUnknownKind    = "Unknown prediction type"
	ErrNotADirectory  = "Not a directory"
	ErrMissingResidue = "Residue not found in structure"
	ErrMissingAtom    = "Atom not found in residue"
)
