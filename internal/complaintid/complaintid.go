// Package complaintid encodes and decodes the composite complaint identifier
// exposed at every API boundary: "c{wardNo}-{summaryId}". Store operations
// always work with the two integer fields, never the encoded string.
package complaintid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
)

const prefix = "c"

func Encode(wardNo, summaryID int) string {
	return fmt.Sprintf("%s%d-%d", prefix, wardNo, summaryID)
}

// Decode accepts exactly the form c<int>-<int>. Anything else, including a
// missing prefix, extra separators, or non-numeric halves, is an
// InvalidIdentifier error.
func Decode(id string) (wardNo, summaryID int, err error) {
	if !strings.HasPrefix(id, prefix) {
		return 0, 0, invalidFormat()
	}
	parts := strings.Split(id[len(prefix):], "-")
	if len(parts) != 2 {
		return 0, 0, invalidFormat()
	}
	wardNo, wErr := strconv.Atoi(parts[0])
	summaryID, sErr := strconv.Atoi(parts[1])
	if wErr != nil || sErr != nil {
		return 0, 0, apperr.New(apperr.KindInvalidIdentifier, "Invalid ward number or summary ID")
	}
	return wardNo, summaryID, nil
}

func invalidFormat() error {
	return apperr.New(apperr.KindInvalidIdentifier, "Invalid complaint ID format")
}
