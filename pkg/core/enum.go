// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package core

import (
	"github.com/alexeldeib/stringslice"
)

// IsKnown reports whether v is one of the values the client was generated with.
//
// Enum types are plain strings, so a value the service introduces later decodes
// without error and encodes back to the exact string it was read from.
func IsKnown[E ~string](v E, known []E) bool {
	values := make([]string, 0, len(known))
	for _, k := range known {
		values = append(values, string(k))
	}
	return stringslice.Has(values, string(v))
}
