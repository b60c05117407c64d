// SPDX-License-Identifier: MIT

package graphio

import "errors"

// ErrMalformed indicates a document that decodes as JSON but does not
// describe a valid graph (negative vertex count, edge without exactly two
// endpoints, endpoint out of range).
var ErrMalformed = errors.New("graphio: malformed graph document")
