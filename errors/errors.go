// This file is part of shymem.
//
// shymem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// shymem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with shymem.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Values is the type used to specify arguments for a CoreError.
type Values []interface{}

// CoreError is the error type used throughout the memory subsystem.
type CoreError struct {
	Category Category
	Values   Values
}

// New is used to create a CoreError of the specified category. Values are
// formatted with the %v verb and joined with ": ".
func New(category Category, values ...interface{}) error {
	return CoreError{
		Category: category,
		Values:   values,
	}
}

// Errorf is a convenience function that creates a CoreError with a single
// formatted message.
func Errorf(category Category, format string, values ...interface{}) error {
	return New(category, fmt.Sprintf(format, values...))
}

func (er CoreError) Error() string {
	s := strings.Builder{}
	s.WriteString(er.Category.String())
	er.detail(&s)
	return s.String()
}

// detail writes the values of the error, omitting the category header of
// any wrapped CoreError that shares the category of its parent.
func (er CoreError) detail(s *strings.Builder) {
	for _, v := range er.Values {
		if ce, ok := v.(CoreError); ok && ce.Category == er.Category {
			ce.detail(s)
			continue
		}
		s.WriteString(": ")
		s.WriteString(fmt.Sprintf("%v", v))
	}
}

// Unwrap returns the first error found in the error values. Implements the
// interface expected by the standard library's errors.Is() and errors.As().
func (er CoreError) Unwrap() error {
	for _, v := range er.Values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// Is checks if the outermost CoreError in err is of the specified category.
func Is(err error, category Category) bool {
	var ce CoreError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.Category == category
}

// Has checks if a CoreError of the specified category appears anywhere in the
// error chain.
func Has(err error, category Category) bool {
	for err != nil {
		if ce, ok := err.(CoreError); ok && ce.Category == category {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// IsAny checks if the error is a CoreError of any category.
func IsAny(err error) bool {
	var ce CoreError
	return stderrors.As(err, &ce)
}
